// Package entity contains the core business objects of the project.
package entity

import "time"

// Field names of the registration form. The JSON keys double as the field
// identifiers the delivery layer sends on every edit.
const (
	FieldNombre                     = "nombre"
	FieldDNI                        = "dni"
	FieldTelefono                   = "telefono"
	FieldEmail                      = "email"
	FieldProvincia                  = "provincia"
	FieldExtension                  = "extension"
	FieldCultivos                   = "cultivos"
	FieldProblemasClima             = "problemas_clima"
	FieldAltitud                    = "altitud"
	FieldMedioAlerta                = "medio_alerta"
	FieldExperiencia                = "experiencia"
	FieldUsaPrediccion              = "usa_prediccion"
	FieldImportanciaRecomendaciones = "importancia_recomendaciones"
	FieldComentarios                = "comentarios"
	FieldContrasena                 = "contraseña"
)

// FormDraft is the in-progress registration form. It is persisted after every
// edit so a farmer can close the app and come back later without losing work.
//
// Validation is advisory while the draft is being filled; only submission is
// gated, and only on the completion threshold.
type FormDraft struct {
	Nombre                     string   `json:"nombre" validate:"omitempty,min=2"`
	DNI                        string   `json:"dni" validate:"omitempty,len=8,numeric"`
	Telefono                   string   `json:"telefono" validate:"omitempty,e164_pe"`
	Email                      string   `json:"email" validate:"omitempty,email"`
	Provincia                  string   `json:"provincia"`
	Extension                  string   `json:"extension"`
	Cultivos                   []string `json:"cultivos"`
	ProblemasClima             string   `json:"problemas_clima"`
	Altitud                    string   `json:"altitud" validate:"omitempty,numeric,altitude"`
	MedioAlerta                []string `json:"medio_alerta"`
	Experiencia                string   `json:"experiencia"`
	UsaPrediccion              string   `json:"usa_prediccion"`
	ImportanciaRecomendaciones string   `json:"importancia_recomendaciones"`
	Comentarios                string   `json:"comentarios"`
	Contrasena                 string   `json:"contraseña" validate:"omitempty,min=6"`
}

// NewFormDraft returns an empty draft. The multi-select members start as
// empty slices, not nil, so a persisted draft round-trips field for field.
func NewFormDraft() *FormDraft {
	return &FormDraft{
		Cultivos:    []string{},
		MedioAlerta: []string{},
	}
}

// RequiredScalarFields is the fixed set of single-value fields counted toward
// completion progress. Comments and the password are deliberately excluded.
func RequiredScalarFields() []string {
	return []string{
		FieldNombre,
		FieldDNI,
		FieldTelefono,
		FieldEmail,
		FieldProvincia,
		FieldExtension,
		FieldProblemasClima,
		FieldAltitud,
		FieldExperiencia,
		FieldUsaPrediccion,
		FieldImportanciaRecomendaciones,
	}
}

// ScalarField returns the current value of a single-value field.
// The boolean reports whether the name belongs to the fixed field set.
func (f *FormDraft) ScalarField(name string) (string, bool) {
	switch name {
	case FieldNombre:
		return f.Nombre, true
	case FieldDNI:
		return f.DNI, true
	case FieldTelefono:
		return f.Telefono, true
	case FieldEmail:
		return f.Email, true
	case FieldProvincia:
		return f.Provincia, true
	case FieldExtension:
		return f.Extension, true
	case FieldProblemasClima:
		return f.ProblemasClima, true
	case FieldAltitud:
		return f.Altitud, true
	case FieldExperiencia:
		return f.Experiencia, true
	case FieldUsaPrediccion:
		return f.UsaPrediccion, true
	case FieldImportanciaRecomendaciones:
		return f.ImportanciaRecomendaciones, true
	case FieldComentarios:
		return f.Comentarios, true
	case FieldContrasena:
		return f.Contrasena, true
	default:
		return "", false
	}
}

// SetScalarField assigns a single-value field by name.
// The boolean reports whether the name belongs to the fixed field set.
func (f *FormDraft) SetScalarField(name, value string) bool {
	switch name {
	case FieldNombre:
		f.Nombre = value
	case FieldDNI:
		f.DNI = value
	case FieldTelefono:
		f.Telefono = value
	case FieldEmail:
		f.Email = value
	case FieldProvincia:
		f.Provincia = value
	case FieldExtension:
		f.Extension = value
	case FieldProblemasClima:
		f.ProblemasClima = value
	case FieldAltitud:
		f.Altitud = value
	case FieldExperiencia:
		f.Experiencia = value
	case FieldUsaPrediccion:
		f.UsaPrediccion = value
	case FieldImportanciaRecomendaciones:
		f.ImportanciaRecomendaciones = value
	case FieldComentarios:
		f.Comentarios = value
	case FieldContrasena:
		f.Contrasena = value
	default:
		return false
	}

	return true
}

// MultiField returns a pointer to a multi-select member by name.
func (f *FormDraft) MultiField(name string) (*[]string, bool) {
	switch name {
	case FieldCultivos:
		return &f.Cultivos, true
	case FieldMedioAlerta:
		return &f.MedioAlerta, true
	default:
		return nil, false
	}
}

// UserProfile is the submitted registration. It is the sole entry of the
// local "user directory" the login comparison runs against, and it keeps the
// password in plaintext because that is the persisted format this store has
// always used.
type UserProfile struct {
	FormDraft
	RegisteredAt       time.Time `json:"registeredAt"`
	RememberDevice     bool      `json:"rememberDevice"`
	AllowNotifications bool      `json:"allowNotifications"`
}

// DemoCredentials is the fallback credential pair used when nobody has
// registered on this device yet.
type DemoCredentials struct {
	Telefono   string `json:"telefono"`
	Contrasena string `json:"contraseña"`
}
