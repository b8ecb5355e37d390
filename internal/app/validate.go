package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError отделяет ошибки ввода от ошибок хранилища: первые
// показываются пользователю сразу и не доходят до БД.
type ValidationError struct {
	msg   string
	cause error
}

func (e *ValidationError) Error() string { return e.msg }
func (e *ValidationError) Unwrap() error { return e.cause }

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func checkStruct(form any) error {
	if err := validate.Struct(form); err != nil {
		return &ValidationError{msg: humanize(err), cause: err}
	}
	return nil
}

// humanize сводит первую нарушенную проверку к короткому сообщению для окна
// ошибки; подробности остаются в обёрнутой ошибке.
func humanize(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "некорректные данные формы"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("поле %q обязательно", fe.Field())
	case "email":
		return fmt.Sprintf("поле %q должно быть адресом почты", fe.Field())
	case "gt", "gte", "min":
		return fmt.Sprintf("поле %q вне допустимого диапазона", fe.Field())
	case "datetime":
		return fmt.Sprintf("поле %q должно быть датой в формате ГГГГ-ММ-ДД", fe.Field())
	default:
		return fmt.Sprintf("поле %q не прошло проверку (%s)", fe.Field(), fe.Tag())
	}
}
