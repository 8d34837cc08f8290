// Package notify delivers budget and bill alerts to the user. The terminal
// notifier is the shipped implementation; it honors the persisted permission
// state so alerts can be switched off entirely.
package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ankitm/fintrack/internal/service"
	"github.com/ankitm/fintrack/internal/storage"
)

// keyPermission stores the notification permission state.
const keyPermission = "fin-track-notify"

var _ service.Notifier = (*TerminalNotifier)(nil)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFE66D"))
	bodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1D3"))
)

// TerminalNotifier writes styled alert lines to a terminal. Notify is a
// no-op unless permission is granted.
type TerminalNotifier struct {
	kv         storage.KV
	out        io.Writer
	permission service.Permission
}

// NewTerminalNotifier loads the persisted permission state and returns a
// notifier writing to out. An absent or unreadable state means permission
// has not been decided yet.
func NewTerminalNotifier(ctx context.Context, kv storage.KV, out io.Writer) *TerminalNotifier {
	permission := service.PermissionDefault
	if value, ok, err := kv.Get(ctx, keyPermission); err == nil && ok {
		switch service.Permission(value) {
		case service.PermissionGranted, service.PermissionDenied:
			permission = service.Permission(value)
		}
	}

	return &TerminalNotifier{kv: kv, out: out, permission: permission}
}

// Permission returns the current permission state.
func (n *TerminalNotifier) Permission() service.Permission {
	return n.permission
}

// RequestPermission grants notification permission and persists the choice.
// In a terminal there is no OS prompt to defer to: invoking the request is
// the grant.
func (n *TerminalNotifier) RequestPermission(ctx context.Context) (service.Permission, error) {
	return n.setPermission(ctx, service.PermissionGranted)
}

// Deny revokes notification permission and persists the choice.
func (n *TerminalNotifier) Deny(ctx context.Context) (service.Permission, error) {
	return n.setPermission(ctx, service.PermissionDenied)
}

func (n *TerminalNotifier) setPermission(ctx context.Context, p service.Permission) (service.Permission, error) {
	if err := n.kv.Put(ctx, keyPermission, string(p)); err != nil {
		return n.permission, fmt.Errorf("failed to persist notification permission: %w", err)
	}
	n.permission = p
	return n.permission, nil
}

// Notify writes a styled notification line. It does nothing unless
// permission is granted.
func (n *TerminalNotifier) Notify(title, body string) {
	if n.permission != service.PermissionGranted {
		return
	}
	fmt.Fprintf(n.out, "%s %s\n", titleStyle.Render("🔔 "+title), bodyStyle.Render(body))
}
