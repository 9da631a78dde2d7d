package model

// Customer - клиент сервис-провайдера, как его отдаёт сервер.
type Customer struct {
	ID     string  `json:"id"`
	Did    string  `json:"did"`
	Name   string  `json:"name"`
	Town   *string `json:"town,omitempty"`
	Active bool    `json:"active"`
}

// ConnectCustomerRequest - тело POST /web/customers.
type ConnectCustomerRequest struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Town *string `json:"town,omitempty"`
}

// UpdateCustomerRequest - тело PUT /web/customers/{id}.
type UpdateCustomerRequest struct {
	Active bool    `json:"active"`
	Name   string  `json:"name"`
	Town   *string `json:"town,omitempty"`
}

// CustomerServiceRef - сервис, включённый клиенту. NutsComm приходит без serviceId.
type CustomerServiceRef struct {
	Type      string `json:"type"`
	ServiceID string `json:"serviceId,omitempty"`
	Ref       string `json:"ref"`
}
