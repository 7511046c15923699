package notify

import (
	"context"
	"fmt"

	"github.com/ncruces/zenity"
)

// Desktop pops a native desktop notification.
type Desktop struct {
	Title string
}

// Send shows n as a desktop notification.
func (d Desktop) Send(ctx context.Context, n Notice) error {
	title := d.Title
	if title == "" {
		title = n.FromName
	}
	text := fmt.Sprintf("To %s: %s", n.ToName, n.Message)
	if err := zenity.Notify(text, zenity.Title(title), zenity.InfoIcon, zenity.Context(ctx)); err != nil {
		return fmt.Errorf("desktop notify: %w", err)
	}
	return nil
}
