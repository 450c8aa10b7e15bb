package care

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/petcare-br/service-shelter/internal/domain"
)

// CareType enumerates the kinds of care events logged for a pet.
type CareType string

const (
	TypeBath         CareType = "BANHO"
	TypeGrooming     CareType = "TOSA"
	TypeVaccine      CareType = "VACINA"
	TypeConsultation CareType = "CONSULTA"
	TypeMedication   CareType = "MEDICACAO"
	TypeDeworming    CareType = "VERMIFUGO"
	TypeOther        CareType = "OUTRO"
)

var careTypes = map[CareType]bool{
	TypeBath:         true,
	TypeGrooming:     true,
	TypeVaccine:      true,
	TypeConsultation: true,
	TypeMedication:   true,
	TypeDeworming:    true,
	TypeOther:        true,
}

// typeAliases maps normalized input spellings that clients commonly send to
// their canonical care type. Checked before the direct enum match.
var typeAliases = map[string]CareType{
	"MEDICAMENTO": TypeMedication,
	"REMEDIO":     TypeMedication,

	"VERMIFUGACAO": TypeDeworming,
	"VERMIFUGA":    TypeDeworming,

	"VETERINARIO":          TypeConsultation,
	"VETERINARIA":          TypeConsultation,
	"CONSULTA_VET":         TypeConsultation,
	"CONSULTA_VETERINARIA": TypeConsultation,

	"BANHO_E_TOSA": TypeOther,
	"BANHO_TOSA":   TypeOther,
	"BANHO+TOSA":   TypeOther,

	"TOSA_HIGIENICA":          TypeGrooming,
	"TOSA_HIGIENICA_COMPLETA": TypeGrooming,
}

// typesRequiringDescription lists the care types where a free-text description
// is mandatory. Baths and grooming can go without one.
var typesRequiringDescription = map[CareType]bool{
	TypeVaccine:      true,
	TypeMedication:   true,
	TypeDeworming:    true,
	TypeConsultation: true,
	TypeOther:        true,
}

var underscoreRuns = regexp.MustCompile(`_+`)

// IsValid returns true if the care type is a recognized value.
func (t CareType) IsValid() bool {
	return careTypes[t]
}

// RequiresDescription returns true if records of this type must carry a description.
func (t CareType) RequiresDescription() bool {
	return typesRequiringDescription[t]
}

// String returns the string representation of the care type.
func (t CareType) String() string {
	return string(t)
}

// ParseCareType resolves a raw input string into a care type: the input is
// normalized (accents stripped, uppercased, separators collapsed to "_"),
// looked up in the alias table, then matched directly against the enum.
func ParseCareType(value string) (CareType, error) {
	if strings.TrimSpace(value) == "" {
		return "", domain.NewBusinessError("Tipo de cuidado inválido.")
	}

	v := normalizeTypeInput(value)

	if t, ok := typeAliases[v]; ok {
		return t, nil
	}
	if t := CareType(v); t.IsValid() {
		return t, nil
	}
	return "", domain.NewBusinessError("Tipo de cuidado inválido: " + value)
}

func normalizeTypeInput(value string) string {
	v := strings.TrimSpace(value)
	v = stripDiacritics(v)
	v = strings.ToUpper(v)
	v = strings.ReplaceAll(v, "-", "_")
	v = strings.ReplaceAll(v, " ", "_")
	return underscoreRuns.ReplaceAllString(v, "_")
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
