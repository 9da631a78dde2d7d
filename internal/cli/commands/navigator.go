package commands

import (
	"fmt"
	"io"
	"sync"

	"RegistryAdmin/internal/cli/api"
)

// sessionClearer - то, что навигатор сбрасывает перед переходом.
type sessionClearer interface {
	Clear() error
}

// Navigator - CLI-версия перехода на страницу входа: сбрасывает отвергнутую
// сессию и подсказывает, какую команду выполнить.
type Navigator struct {
	out     io.Writer
	session sessionClearer

	mu    sync.Mutex
	route string
	count int
}

var _ api.Navigator = (*Navigator)(nil)

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

// Attach задаёт сессию, которую нужно сбросить при переходе.
func (n *Navigator) Attach(s sessionClearer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.session = s
}

// Navigate вызывается клиентом на ответ 401.
func (n *Navigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.route = route
	n.count++
	if n.session != nil {
		if err := n.session.Clear(); err != nil {
			fmt.Fprintf(n.out, "Could not clear stored session: %v\n", err)
		}
	}
	fmt.Fprintf(n.out, "Session is missing or expired. Run `%s` to sign in.\n", route)
}

// Navigated возвращает последний маршрут и число переходов.
func (n *Navigator) Navigated() (string, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route, n.count
}
