package document

import (
	"context"
	"strings"
	"testing"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func sample(kind interfaces.DocumentKind, showCost bool) interfaces.DocumentData {
	return interfaces.DocumentData{
		Kind:     kind,
		Title:    "Invoice",
		Number:   "INV-ABCD1234",
		Date:     "2026-04-01",
		Terms:    "Due on Receipt",
		Company:  entities.CompanyProfile{CompanyName: "Foam & Co"},
		Customer: entities.CustomerProfile{Name: "<Ann>"},
		Lines: []interfaces.DocumentLine{
			{Description: "Open cell foam", Quantity: "1.25 sets", Amount: decimal.NewFromFloat(2500)},
			{Description: "Labor", Quantity: "24 hrs", Amount: decimal.NewFromFloat(2040.456)},
		},
		Total:    decimal.NewFromFloat(4540.456),
		ShowCost: showCost,
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	t.Run("priced document", func(t *testing.T) {
		doc, err := r.Render(context.Background(), sample(interfaces.DocumentInvoice, true))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		body := string(doc.Body)
		if doc.ContentType != ContentTypeHTML || doc.FileName != "Invoice-INV-ABCD1234.html" {
			t.Fatalf("unexpected meta: %+v", doc)
		}
		for _, want := range []string{"Foam &amp; Co", "&lt;Ann&gt;", "$2040.46", "$4540.46", "Due on Receipt"} {
			if !strings.Contains(body, want) {
				t.Fatalf("body missing %q:\n%s", want, body)
			}
		}
	})

	t.Run("work order hides prices", func(t *testing.T) {
		doc, err := r.Render(context.Background(), sample(interfaces.DocumentWorkOrder, false))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(string(doc.Body), "$") {
			t.Fatalf("work order should not show amounts")
		}
	})
}

func TestFileName(t *testing.T) {
	cases := map[string][2]string{
		"Estimate-EST-1.html": {"Estimate", "EST-1"},
		"Work_Order-42.html":  {"Work Order", "42"},
		"document.html":       {"", ""},
	}
	for want, in := range cases {
		if got := FileName(in[0], in[1]); got != want {
			t.Errorf("FileName(%q,%q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}
