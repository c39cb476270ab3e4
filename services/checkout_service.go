package services

import (
	"fmt"
	"net/url"
	"strings"

	"esencia-shop/models"
)

// BuildWhatsAppMessage renders the order as the text handed to the shop's
// WhatsApp line: one numbered block per cart line with name, brand,
// quantity, unit price and stock status, then the total, a warning when
// anything is on backorder, and the order reference.
func BuildWhatsAppMessage(orderNumber string, lines []models.CartLine, total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛍️ *Pedido ESENCIA #%s*\n\n", orderNumber)

	for i, line := range lines {
		status := "✅ En stock"
		if !line.InStock {
			status = "📦 A pedido"
		}
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, line.Name)
		fmt.Fprintf(&b, "   %s\n", line.Brand)
		fmt.Fprintf(&b, "   Cantidad: %d\n", line.Quantity)
		fmt.Fprintf(&b, "   Precio: $%s\n", models.FormatPrice(line.Price))
		fmt.Fprintf(&b, "   %s\n\n", status)
	}

	fmt.Fprintf(&b, "💰 *Total: $%s*\n\n", models.FormatPrice(total))

	for _, line := range lines {
		if !line.InStock {
			b.WriteString("⚠️ Algunos productos están a pedido\n\n")
			break
		}
	}

	fmt.Fprintf(&b, "📋 Referencia: #%s", orderNumber)

	return b.String()
}

// WhatsAppURL builds the wa.me link that opens the prefilled chat.
func WhatsAppURL(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}
