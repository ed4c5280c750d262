package offer

import (
	"testing"
	"time"

	"trainingcenter/internal/app/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOffer() pricing.Offer {
	return pricing.Offer{
		Lines: []pricing.PricedLine{
			{Num: 1, Name: "Стропальщик 4 разряда", PeopleCount: 3, UnitPrice: 1000, Total: 3000},
			{Num: 2, Name: "Работы на высоте", PeopleCount: 2, UnitPrice: 500, Total: 1000},
		},
		GrandTotal: 4000,
	}
}

func sampleMeta() Meta {
	return Meta{
		ApplicationID: 17,
		CompanyName:   "ООО Ромашка",
		PhoneNumber:   "+79991234567",
		Email:         "info@romashka.ru",
	}
}

func TestBuildFields(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)

	fields, err := BuildFields(sampleOffer(), sampleMeta(), now)
	require.NoError(t, err)

	assert.Equal(t, "17", fields["id"])
	assert.Equal(t, "ООО Ромашка", fields["company_name"])
	assert.Equal(t, "+79991234567", fields["phone_number"])
	assert.Equal(t, "info@romashka.ru", fields["email"])
	assert.Equal(t, "4000", fields["all_total"])
	assert.Equal(t, "01.09.2026", fields["date_now"])

	services, ok := fields["services"].(string)
	require.True(t, ok)
	assert.Contains(t, services, "1. Стропальщик 4 разряда — 3 чел. × 1000 руб. = 3000 руб.")
	assert.Contains(t, services, "2. Работы на высоте — 2 чел. × 500 руб. = 1000 руб.")
}

func TestBuildFieldsMissingMeta(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Meta)
		key    string
	}{
		{"no id", func(m *Meta) { m.ApplicationID = 0 }, "id"},
		{"no company", func(m *Meta) { m.CompanyName = "" }, "company_name"},
		{"no phone", func(m *Meta) { m.PhoneNumber = "" }, "phone_number"},
		{"no email", func(m *Meta) { m.Email = "" }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := sampleMeta()
			tt.mutate(&meta)

			_, err := BuildFields(sampleOffer(), meta, time.Now())
			require.Error(t, err)

			var bindErr *BindingError
			require.ErrorAs(t, err, &bindErr)
			assert.Equal(t, tt.key, bindErr.Key)
		})
	}
}

func TestBuildFieldsMissingLineName(t *testing.T) {
	off := sampleOffer()
	off.Lines[1].Name = ""

	_, err := BuildFields(off, sampleMeta(), time.Now())

	var bindErr *BindingError
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "services[1].name", bindErr.Key)
}

func TestRenderMissingTemplate(t *testing.T) {
	r := NewRenderer("testdata/no_such_template.docx")

	_, err := r.Render(sampleOffer(), sampleMeta(), time.Now())
	assert.Error(t, err)
}
