package services

import (
	"strings"
	"testing"

	"esencia-shop/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildWhatsAppMessage(t *testing.T) {
	lines := []models.CartLine{
		{PerfumeID: "1", Name: "Oud Al Layl", Brand: "Lattafa", Price: 45000, Quantity: 1, InStock: true},
		{PerfumeID: "4", Name: "Amber Oud", Brand: "Al Haramain", Price: 38000, Quantity: 2, InStock: true},
	}

	msg := BuildWhatsAppMessage("ORD-1700000000", lines, 121000)

	assert.True(t, strings.HasPrefix(msg, "🛍️ *Pedido ESENCIA #ORD-1700000000*\n\n"))
	assert.Contains(t, msg, "1. *Oud Al Layl*\n   Lattafa\n   Cantidad: 1\n   Precio: $45.000\n   ✅ En stock\n\n")
	assert.Contains(t, msg, "2. *Amber Oud*\n   Al Haramain\n   Cantidad: 2\n   Precio: $38.000\n   ✅ En stock\n\n")
	assert.Contains(t, msg, "💰 *Total: $121.000*")
	assert.True(t, strings.HasSuffix(msg, "📋 Referencia: #ORD-1700000000"))
	assert.NotContains(t, msg, "⚠️ Algunos productos están a pedido")
}

func TestBuildWhatsAppMessageBackorderWarning(t *testing.T) {
	lines := []models.CartLine{
		{PerfumeID: "2", Name: "Aventus", Brand: "Creed", Price: 120000, Quantity: 1, InStock: false},
	}

	msg := BuildWhatsAppMessage("ORD-1", lines, 120000)

	assert.Contains(t, msg, "📦 A pedido")
	assert.Contains(t, msg, "⚠️ Algunos productos están a pedido\n\n📋 Referencia: #ORD-1")
}

func TestBuildWhatsAppMessageEmptyOrder(t *testing.T) {
	msg := BuildWhatsAppMessage("ORD-2", nil, 0)

	assert.Contains(t, msg, "💰 *Total: $0*")
	assert.NotContains(t, msg, "1. *")
}

func TestWhatsAppURL(t *testing.T) {
	url := WhatsAppURL("5491234567890", "hola mundo")

	assert.True(t, strings.HasPrefix(url, "https://wa.me/5491234567890?text="))
	assert.Contains(t, url, "hola+mundo")
}

func TestWhatsAppURLEscapesMessage(t *testing.T) {
	url := WhatsAppURL("549", "*Pedido #1* 100%")

	assert.NotContains(t, url[len("https://wa.me/549?text="):], "#")
	assert.Contains(t, url, "%23")
	assert.Contains(t, url, "%25")
}
