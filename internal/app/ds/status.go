package ds

import (
	"strconv"
	"strings"
)

// Статус заявки хранится в БД одной строкой ("In-Progress", "Priced: 4000").
// Внутри приложения статус — тегированный вариант, строка существует только
// на границе с БД и отображением.

type StatusKind int

const (
	StatusInProgress StatusKind = iota
	StatusPriced
	StatusUnknown // строка в БД не распознана (легаси или битые данные)
)

const (
	statusInProgress   = "In-Progress"
	statusPricedPrefix = "Priced: "
)

type Status struct {
	Kind  StatusKind
	Total int64  // заполнен только для StatusPriced
	Raw   string // исходная строка для StatusUnknown
}

func NewInProgress() Status {
	return Status{Kind: StatusInProgress}
}

func NewPriced(total int64) Status {
	return Status{Kind: StatusPriced, Total: total}
}

// String сериализует статус в строковое представление для БД и отображения.
func (s Status) String() string {
	switch s.Kind {
	case StatusInProgress:
		return statusInProgress
	case StatusPriced:
		return statusPricedPrefix + strconv.FormatInt(s.Total, 10)
	default:
		return s.Raw
	}
}

// ParseStatus разбирает строку статуса из БД. Нераспознанные строки дают
// StatusUnknown с сохранением исходного значения.
func ParseStatus(raw string) Status {
	if raw == statusInProgress {
		return Status{Kind: StatusInProgress}
	}
	if rest, ok := strings.CutPrefix(raw, statusPricedPrefix); ok {
		total, err := strconv.ParseInt(rest, 10, 64)
		if err == nil {
			return Status{Kind: StatusPriced, Total: total}
		}
	}
	return Status{Kind: StatusUnknown, Raw: raw}
}

// IsActive — заявка ещё в работе. Всё остальное (включая нераспознанные
// статусы) считается отработанным, как и в исходной постановке.
func (s Status) IsActive() bool {
	return s.Kind == StatusInProgress
}
