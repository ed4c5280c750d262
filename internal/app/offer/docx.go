package offer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"trainingcenter/internal/app/pricing"

	docx "github.com/lukasjarosch/go-docx"
)

// Рендер коммерческого предложения: фиксированный docx-шаблон заполняется
// данными рассчитанной заявки. Задача рендера — собрать ровно тот набор
// ключей, который ожидает шаблон; отсутствие обязательного значения — ошибка,
// а не тихая подстановка пустой строки.

// BindingError — в данных заявки нет значения для плейсхолдера шаблона.
type BindingError struct {
	Key string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("offer: нет значения для плейсхолдера шаблона %q", e.Key)
}

// Meta — реквизиты заявки, попадающие в шапку документа.
type Meta struct {
	ApplicationID uint
	CompanyName   string
	PhoneNumber   string
	Email         string
}

type Renderer struct {
	templatePath string
}

func NewRenderer(templatePath string) *Renderer {
	return &Renderer{templatePath: templatePath}
}

// Render заполняет шаблон и возвращает готовый документ. Дата рендеринга
// передаётся снаружи, чтобы результат был воспроизводим.
func (r *Renderer) Render(off pricing.Offer, meta Meta, now time.Time) ([]byte, error) {
	fields, err := BuildFields(off, meta, now)
	if err != nil {
		return nil, err
	}

	doc, err := docx.Open(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("offer: не удалось открыть шаблон: %w", err)
	}
	defer doc.Close()

	if err := doc.ReplaceAll(fields); err != nil {
		return nil, fmt.Errorf("offer: не удалось заполнить шаблон: %w", err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("offer: не удалось записать документ: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildFields собирает значения плейсхолдеров шаблона. Выделено отдельно от
// записи файла: проверка полноты данных не требует docx-шаблона.
func BuildFields(off pricing.Offer, meta Meta, now time.Time) (docx.PlaceholderMap, error) {
	if meta.ApplicationID == 0 {
		return nil, &BindingError{Key: "id"}
	}
	if meta.CompanyName == "" {
		return nil, &BindingError{Key: "company_name"}
	}
	if meta.PhoneNumber == "" {
		return nil, &BindingError{Key: "phone_number"}
	}
	if meta.Email == "" {
		return nil, &BindingError{Key: "email"}
	}

	serviceLines := make([]string, len(off.Lines))
	for i, line := range off.Lines {
		if line.Name == "" {
			return nil, &BindingError{Key: fmt.Sprintf("services[%d].name", i)}
		}
		serviceLines[i] = fmt.Sprintf("%d. %s — %d чел. × %d руб. = %d руб.",
			line.Num, line.Name, line.PeopleCount, line.UnitPrice, line.Total)
	}

	return docx.PlaceholderMap{
		"id":           fmt.Sprintf("%d", meta.ApplicationID),
		"company_name": meta.CompanyName,
		"phone_number": meta.PhoneNumber,
		"email":        meta.Email,
		"services":     strings.Join(serviceLines, "\n"),
		"all_total":    fmt.Sprintf("%d", off.GrandTotal),
		"date_now":     now.Format("02.01.2006"),
	}, nil
}
