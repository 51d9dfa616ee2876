package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Detalles flattens the binding error of req into a field -> message
// map keyed by the json tag. Non-validation errors yield nil.
func Detalles(err error, req any) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	tipo := reflect.TypeOf(req)
	if tipo.Kind() == reflect.Pointer {
		tipo = tipo.Elem()
	}

	detalles := map[string]string{}
	for _, fe := range verrs {
		nombre := fe.Field()
		if campo, ok := tipo.FieldByName(fe.StructField()); ok {
			if tag := strings.Split(campo.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
				nombre = tag
			}
		}
		detalles[nombre] = mensaje(fe)
	}
	return detalles
}

func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un correo válido"
	case "min":
		return "es demasiado corto"
	case "gte":
		return "no puede ser negativo"
	default:
		return "es inválido"
	}
}
