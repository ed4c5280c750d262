package validation

import (
	"strings"
	"testing"

	"trainingcenter/internal/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() dto.RawApplication {
	return dto.RawApplication{
		UserID:      "123456789",
		CompanyName: "ООО Ромашка",
		PhoneNumber: "+79991234567",
		Email:       "info@romashka.ru",
		Services: []dto.RawService{
			{TrainingTypeID: "1", TrainingProgramID: "2", TrainingRank: "3", PeopleCount: "5"},
		},
	}
}

func TestValidateSubmissionOK(t *testing.T) {
	draft, err := ValidateSubmission(validRaw())
	require.NoError(t, err)

	assert.Equal(t, int64(123456789), draft.UserID)
	assert.Equal(t, "ООО Ромашка", draft.CompanyName)
	assert.Equal(t, "+79991234567", draft.PhoneNumber)
	assert.Equal(t, "info@romashka.ru", draft.Email)
	require.Len(t, draft.Services, 1)
	assert.Equal(t, uint(1), draft.Services[0].TrainingTypeID)
	assert.Equal(t, uint(2), draft.Services[0].TrainingProgramID)
	assert.Equal(t, "3", draft.Services[0].TrainingRank)
	assert.Equal(t, 5, draft.Services[0].PeopleCount)
}

func TestValidateSubmissionNumbersFromJSON(t *testing.T) {
	// encoding/json отдаёт числа как float64
	raw := validRaw()
	raw.UserID = float64(42)
	raw.Services[0].TrainingTypeID = float64(1)
	raw.Services[0].TrainingProgramID = float64(2)
	raw.Services[0].PeopleCount = float64(7)

	draft, err := ValidateSubmission(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), draft.UserID)
	assert.Equal(t, 7, draft.Services[0].PeopleCount)
}

func TestValidateSubmissionPhoneFormats(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"+79991234567", true},
		{"89991234567", true},
		{"9991234567", false},
		{"+7999123456", false},   // 9 цифр после +7
		{"+799912345678", false}, // 11 цифр после +7
		{"8999123456a", false},
		{"+89991234567", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			raw := validRaw()
			raw.PhoneNumber = tt.phone
			_, err := ValidateSubmission(raw)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "phone_number")
			}
		})
	}
}

func TestValidateSubmissionCollectsAllErrors(t *testing.T) {
	raw := dto.RawApplication{
		UserID:      "не число",
		CompanyName: "   ",
		PhoneNumber: "12345",
		Email:       "not-an-email",
		Services: []dto.RawService{
			{TrainingTypeID: "0", TrainingProgramID: "x", PeopleCount: "-1"},
		},
	}

	_, err := ValidateSubmission(raw)
	require.Error(t, err)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 7)

	// Одно сообщение — по строке на каждое поле
	msg := err.Error()
	assert.Equal(t, len(errs), len(strings.Split(msg, "\n")))
	for _, field := range []string{
		"user_id", "company_name", "phone_number", "email",
		"services[0].training_type_id", "services[0].training_program_id", "services[0].people_count",
	} {
		assert.Contains(t, msg, field)
	}
}

func TestValidateSubmissionEmptyServices(t *testing.T) {
	raw := validRaw()
	raw.Services = nil

	_, err := ValidateSubmission(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "services")
}

func TestValidateSubmissionPeopleCountPositive(t *testing.T) {
	raw := validRaw()
	raw.Services[0].PeopleCount = "0"

	_, err := ValidateSubmission(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "people_count")
}

func TestValidateSubmissionOptionalRank(t *testing.T) {
	raw := validRaw()
	raw.Services[0].TrainingRank = ""

	draft, err := ValidateSubmission(raw)
	require.NoError(t, err)
	assert.Equal(t, "", draft.Services[0].TrainingRank)
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int64
		ok    bool
	}{
		{"string", "15", 15, true},
		{"string with spaces", " 15 ", 15, true},
		{"float64", float64(15), 15, true},
		{"int", 15, 15, true},
		{"fraction", 15.5, 0, false},
		{"garbage string", "пятнадцать", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceInt(tt.value)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
