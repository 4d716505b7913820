package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"

	"github.com/chatard/storefront/internal/domain"
)

const dateLayout = "02/01/2006"

// Formatter renders order requests into the outbound WhatsApp message.
// The template is deterministic for a fixed clock.
type Formatter struct {
	origin string
	loc    *time.Location
	now    func() time.Time
}

func NewFormatter(origin string, loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{origin: origin, loc: loc, now: time.Now}
}

// WithClock fixes the formatter clock, used by tests.
func (f *Formatter) WithClock(now func() time.Time) *Formatter {
	f.now = now
	return f
}

// FormatMessage produces the multi-line order summary. Service and
// product requests get different bodies; both share the header, the
// customer block and the origin footer.
func (f *Formatter) FormatMessage(req Request) (string, error) {
	var b strings.Builder
	now := f.now().In(f.loc)

	b.WriteString("🛠️ *NUEVO PEDIDO - Industria Chatard* 🛠️\n\n")
	fmt.Fprintf(&b, "📋 *Orden:* %s\n", req.OrderID)
	fmt.Fprintf(&b, "📅 *Fecha:* %s\n", now.Format(dateLayout))
	fmt.Fprintf(&b, "🕐 *Hora:* %s\n\n", now.Format("15:04:05"))

	switch req.Kind {
	case KindService:
		if req.Service == nil {
			return "", errors.New("order: service request without service payload")
		}
		f.writeService(&b, req.Service)
	case KindProduct:
		if req.Product == nil {
			return "", errors.New("order: product request without product payload")
		}
		f.writeProduct(&b, req.Product)
	default:
		return "", errors.Errorf("order: unknown request kind %q", req.Kind)
	}

	fmt.Fprintf(&b, "📍 *ENVIADO DESDE WEB:* %s", f.origin)
	return b.String(), nil
}

func (f *Formatter) writeService(b *strings.Builder, sr *ServiceRequest) {
	email := sr.Customer.Email
	if email == "" {
		email = "No especificado"
	}
	b.WriteString("👤 *CLIENTE*\n")
	fmt.Fprintf(b, "▫️ Nombre: %s\n", sr.Customer.Name)
	fmt.Fprintf(b, "▫️ Teléfono: %s\n", sr.Customer.Phone)
	fmt.Fprintf(b, "▫️ Email: %s\n\n", email)

	name, ok := domain.ServiceNames[sr.Service]
	if !ok {
		name = sr.Service
	}
	b.WriteString("🛠️ *SERVICIO SOLICITADO*\n")
	fmt.Fprintf(b, "▫️ %s\n", name)
	fmt.Fprintf(b, "▫️ Descripción: %s\n\n", sr.Description)

	if sr.Material != "" {
		fmt.Fprintf(b, "▫️ Material: %s\n", sr.Material)
	}
	if sr.Quantity != "" {
		fmt.Fprintf(b, "▫️ Cantidad: %s\n", sr.Quantity)
	}
	if sr.Deadline != "" {
		fmt.Fprintf(b, "▫️ Plazo: %s\n", formatDeadline(sr.Deadline))
	}
}

func (f *Formatter) writeProduct(b *strings.Builder, pr *ProductRequest) {
	b.WriteString("👤 *CLIENTE*\n")
	fmt.Fprintf(b, "▫️ %s\n", pr.Customer.Name)
	fmt.Fprintf(b, "▫️ %s\n", pr.Customer.Phone)
	fmt.Fprintf(b, "▫️ %s\n\n", pr.Customer.Address)

	b.WriteString("📦 *PRODUCTOS*\n")
	for i, item := range pr.Items {
		fmt.Fprintf(b, "%d. %s x%d\n", i+1, item.Name, item.Quantity)
		fmt.Fprintf(b, "   Precio: $%.2f c/u\n", item.Price)
		fmt.Fprintf(b, "   Subtotal: $%.2f\n\n", item.Subtotal())
	}
	fmt.Fprintf(b, "💰 *TOTAL: $%.2f*\n\n", pr.Total)
}

// formatDeadline normalizes a free-text deadline to dd/mm/yyyy when it
// parses as a date; otherwise the raw text is kept.
func formatDeadline(deadline string) string {
	t, err := dateparse.ParseAny(deadline)
	if err != nil {
		return deadline
	}
	return t.Format(dateLayout)
}
