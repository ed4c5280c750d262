package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Сырые данные формы подачи заявки ============

// Числовые поля приходят из мини-приложения строками, поэтому до валидации
// они нетипизированы. Единственный потребитель этих структур — слой валидации.

type RawService struct {
	TrainingTypeID    interface{} `json:"training_type_id"`
	TrainingProgramID interface{} `json:"training_program_id"`
	TrainingRank      string      `json:"training_rank"`
	PeopleCount       interface{} `json:"people_count"`
}

type RawApplication struct {
	UserID      interface{}  `json:"user_id"`
	CompanyName string       `json:"company_name"`
	PhoneNumber string       `json:"phone_number"`
	Email       string       `json:"email"`
	Services    []RawService `json:"services"`
}

// ============ Заявки (Applications) ============

type SubmitApplicationResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	ApplicationID uint   `json:"application_id"`
}

type ServiceInApplicationResponse struct {
	TrainingType    string `json:"training_type"`
	TrainingProgram string `json:"training_program"`
	TrainingRank    string `json:"training_rank,omitempty"`
	PeopleCount     int    `json:"people_count"`
	Price           *int64 `json:"price,omitempty"`
	LineTotal       *int64 `json:"line_total,omitempty"`
}

type ApplicationResponse struct {
	ID          uint                           `json:"id"`
	UserID      int64                          `json:"user_id"`
	CompanyName string                         `json:"company_name"`
	PhoneNumber string                         `json:"phone_number"`
	Email       string                         `json:"email"`
	Status      string                         `json:"status"`
	Services    []ServiceInApplicationResponse `json:"services"`
}

type ApplicationListResponse struct {
	Active    []ApplicationResponse `json:"active"`
	Completed []ApplicationResponse `json:"completed"`
}

// ============ Расчёт стоимости (ввод цен администратором) ============

type PricedLineRequest struct {
	TrainingProgram string `json:"training_program" binding:"required"`
	TrainingRank    string `json:"training_rank"`
	PeopleCount     int    `json:"people_count" binding:"required,gt=0"`
	Price           int64  `json:"price" binding:"required,gt=0"`
}

type PriceApplicationRequest struct {
	Lines []PricedLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ============ Справочники ============

type TrainingTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TrainingTypeListResponse struct {
	Types []TrainingTypeResponse `json:"types"`
}

type TrainingProgramResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TrainingProgramListResponse struct {
	Programs []TrainingProgramResponse `json:"programs"`
}
