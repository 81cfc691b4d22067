package handler

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Erros de validação usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// decodeRequest lê o corpo JSON e valida as tags. Em caso de erro a resposta já foi escrita.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logrus.WithError(err).Debug("corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados da requisição inválidos", validationDetails(err))
		return false
	}
	return true
}

func validationDetails(err error) []ValidationDetail {
	var details []ValidationDetail

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return details
	}

	for _, e := range validationErrors {
		details = append(details, ValidationDetail{
			Field:   e.Namespace()[strings.Index(e.Namespace(), ".")+1:],
			Message: validationMessage(e),
		})
	}
	return details
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "uuid":
		return "identificador inválido"
	case "min":
		if e.Kind() == reflect.String {
			return "deve ter ao menos " + e.Param() + " caracteres"
		}
		return "deve ser no mínimo " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "deve ter no máximo " + e.Param() + " caracteres"
		}
		return "deve ser no máximo " + e.Param()
	case "len":
		return "deve ter exatamente " + e.Param() + " caracteres"
	case "gte":
		return "deve ser maior ou igual a " + e.Param()
	case "numeric":
		return "deve conter apenas números"
	case "alphanum":
		return "deve conter apenas letras e números"
	case "oneof":
		return "deve ser um de: " + e.Param()
	default:
		return "valor inválido"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// intPathParam converte um parâmetro numérico da rota, respondendo 400 se inválido
func intPathParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := pathParam(r, name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro "+name+" não fornecido", nil)
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return value, true
}

func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}

// writeServiceError responde com o código de um erro tipado dos casos de uso.
// Falhas internas são registradas; as demais vão apenas para o cliente.
func writeServiceError(w http.ResponseWriter, component, code string, err error, details map[string]any) {
	status := apiErrors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithField("code", code).Error(component + ": erro ao processar requisição")
	}

	if len(details) == 0 {
		details = nil
	}
	apiErrors.WriteError(w, code, err.Error(), details)
}

func withDetail(details map[string]any, key, value string) map[string]any {
	if value == "" {
		return details
	}
	if details == nil {
		details = map[string]any{}
	}
	details[key] = value
	return details
}
