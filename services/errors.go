package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed         = errors.New("validation failed")
	ErrUserFirstNameRequired    = errors.New("first name is required")
	ErrUserLastNameRequired     = errors.New("last name is required")
	ErrUserNationalIDRequired   = errors.New("national id is required")
	ErrUserUsernameTooShort     = errors.New("username must be at least 3 characters")
	ErrUserPasswordTooShort     = errors.New("password must be at least 6 characters")
	ErrUserInvalidEmail         = errors.New("email address is not valid")
	ErrUserInvalidRole          = errors.New("invalid user role provided")
	ErrChampionshipNameRequired = errors.New("championship name is required")
	ErrChampionshipBadStatus    = errors.New("invalid championship status provided")
	ErrReportTitleRequired      = errors.New("report title is required")
	ErrReportInvalidPlayerID    = errors.New("player id must be positive")
	ErrReportInvalidChampID     = errors.New("championship id must be positive")

	// Ошибки конфликтов
	ErrUserNationalIDConflict   = errors.New("national id is already in use")
	ErrUserUsernameConflict     = errors.New("username is already in use")
	ErrUserEmailConflict        = errors.New("email address is already in use")
	ErrChampionshipNameConflict = errors.New("championship name already exists")

	// Удаление заблокировано зависимыми отчётами
	ErrUserHasReports         = errors.New("user has player reports and cannot be deleted")
	ErrChampionshipHasReports = errors.New("championship has player reports and cannot be deleted")

	// Ошибки, специфичные для сущностей (дают больше контекста, чем ErrNotFound)
	ErrUserNotFound               = errors.New("user not found")
	ErrChampionshipNotFound       = errors.New("championship not found")
	ErrReportNotFound             = errors.New("player report not found")
	ErrReportPlayerNotFound       = errors.New("report player not found")
	ErrReportChampionshipNotFound = errors.New("report championship not found")
)
