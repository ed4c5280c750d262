package pricing

import "errors"

// Расчёт коммерческого предложения. Чистая функция: порядок строк сохраняется,
// нумерация для отображения начинается с 1, вся арифметика целочисленная
// (int64). Переполнение int64 не замалчивается и возвращается ошибкой.

var ErrOverflow = errors.New("pricing: переполнение при расчёте стоимости")

// Line — строка заявки с введённой администратором ценой за человека.
type Line struct {
	Program     string
	Rank        string // пустая строка — разряд не указан
	PeopleCount int64
	UnitPrice   int64
}

// PricedLine — рассчитанная строка предложения.
type PricedLine struct {
	Num         int    // порядковый номер в документе, с 1
	Name        string // программа + разряд, если указан
	PeopleCount int64
	UnitPrice   int64
	Total       int64
}

type Offer struct {
	Lines      []PricedLine
	GrandTotal int64
}

// ComputeOffer считает стоимость по строкам и итоговую сумму предложения.
// Пустой список строк допустим и даёт нулевой итог, хотя выше по потоку
// валидация не пропускает заявки без услуг.
func ComputeOffer(lines []Line) (Offer, error) {
	offer := Offer{Lines: make([]PricedLine, 0, len(lines))}

	for i, line := range lines {
		total, err := mulInt64(line.PeopleCount, line.UnitPrice)
		if err != nil {
			return Offer{}, err
		}
		grand, err := addInt64(offer.GrandTotal, total)
		if err != nil {
			return Offer{}, err
		}
		offer.GrandTotal = grand

		offer.Lines = append(offer.Lines, PricedLine{
			Num:         i + 1,
			Name:        ComposeName(line.Program, line.Rank),
			PeopleCount: line.PeopleCount,
			UnitPrice:   line.UnitPrice,
			Total:       total,
		})
	}

	return offer, nil
}

// ComposeName строит отображаемое название услуги: к программе добавляется
// разряд, только если он указан.
func ComposeName(program, rank string) string {
	if rank == "" {
		return program
	}
	return program + " " + rank + " разряда"
}

func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	res := a * b
	if res/b != a {
		return 0, ErrOverflow
	}
	return res, nil
}

func addInt64(a, b int64) (int64, error) {
	res := a + b
	if (b > 0 && res < a) || (b < 0 && res > a) {
		return 0, ErrOverflow
	}
	return res, nil
}
