package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"trainingcenter/internal/app/ds"
	"trainingcenter/internal/app/dto"

	"github.com/go-playground/validator/v10"
)

// Телефон: +7 и 10 цифр либо 8 и 10 цифр
var phonePattern = regexp.MustCompile(`^\+7\d{10}$|^8\d{10}$`)

var validate = validator.New()

// FieldError — ошибка валидации одного поля формы.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("Ошибка в поле %s - %s, проверьте корректность данных", e.Field, e.Reason)
}

// Errors собирает ошибки по всем полям сразу: пользователь получает одно
// сообщение со строкой на каждое некорректное поле, а не первую попавшуюся.
type Errors []FieldError

func (e Errors) Error() string {
	lines := make([]string, len(e))
	for i, fe := range e {
		lines[i] = fe.Error()
	}
	return strings.Join(lines, "\n")
}

// ValidateSubmission проверяет сырые данные формы и собирает типизированный
// черновик заявки. Возвращает либо черновик, либо Errors со всеми найденными
// проблемами. Побочных эффектов нет.
func ValidateSubmission(raw dto.RawApplication) (*ds.ApplicationDraft, error) {
	var errs Errors

	draft := &ds.ApplicationDraft{
		CompanyName: strings.TrimSpace(raw.CompanyName),
		PhoneNumber: strings.TrimSpace(raw.PhoneNumber),
		Email:       strings.TrimSpace(raw.Email),
	}

	userID, err := coerceInt(raw.UserID)
	if err != nil {
		errs = append(errs, FieldError{Field: "user_id", Reason: "значение должно быть целым числом"})
	} else {
		draft.UserID = userID
	}

	if draft.CompanyName == "" {
		errs = append(errs, FieldError{Field: "company_name", Reason: "наименование компании не может быть пустым"})
	}

	if !phonePattern.MatchString(draft.PhoneNumber) {
		errs = append(errs, FieldError{
			Field:  "phone_number",
			Reason: "ожидается формат +7XXXXXXXXXX или 8XXXXXXXXXX",
		})
	}

	if err := validate.Var(draft.Email, "required,email"); err != nil {
		errs = append(errs, FieldError{Field: "email", Reason: "некорректный адрес электронной почты"})
	}

	if len(raw.Services) == 0 {
		errs = append(errs, FieldError{Field: "services", Reason: "заявка должна содержать хотя бы одну услугу"})
	}

	for i, rawService := range raw.Services {
		service, serviceErrs := validateService(i, rawService)
		if len(serviceErrs) > 0 {
			errs = append(errs, serviceErrs...)
			continue
		}
		draft.Services = append(draft.Services, service)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return draft, nil
}

func validateService(idx int, raw dto.RawService) (ds.ServiceDraft, Errors) {
	var errs Errors

	field := func(name string) string {
		return fmt.Sprintf("services[%d].%s", idx, name)
	}

	service := ds.ServiceDraft{TrainingRank: strings.TrimSpace(raw.TrainingRank)}

	typeID, err := coerceInt(raw.TrainingTypeID)
	if err != nil || typeID <= 0 {
		errs = append(errs, FieldError{Field: field("training_type_id"), Reason: "значение должно быть положительным целым числом"})
	} else {
		service.TrainingTypeID = uint(typeID)
	}

	programID, err := coerceInt(raw.TrainingProgramID)
	if err != nil || programID <= 0 {
		errs = append(errs, FieldError{Field: field("training_program_id"), Reason: "значение должно быть положительным целым числом"})
	} else {
		service.TrainingProgramID = uint(programID)
	}

	peopleCount, err := coerceInt(raw.PeopleCount)
	if err != nil || peopleCount <= 0 {
		errs = append(errs, FieldError{Field: field("people_count"), Reason: "количество человек должно быть больше нуля"})
	} else {
		service.PeopleCount = int(peopleCount)
	}

	return service, errs
}

// coerceInt приводит значение из JSON к int64: числа приходят как float64,
// а мини-приложение шлёт значения селектов строками.
func coerceInt(v interface{}) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, fmt.Errorf("значение отсутствует")
	case float64:
		if val != float64(int64(val)) {
			return 0, fmt.Errorf("значение %v не является целым", val)
		}
		return int64(val), nil
	case int:
		return int64(val), nil
	case int64:
		return val, nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("строку %q нельзя преобразовать в число", val)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("неожиданный тип значения %T", v)
	}
}
