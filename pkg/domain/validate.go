package domain

import (
	"fmt"
	"regexp"
	"strings"

	"leadgate/pkg/apperrors"
	"leadgate/pkg/taxid"
)

// Validation limits for user-supplied fields.
const (
	NameMinLength        = 5
	NameMaxLength        = 100
	EmailMaxLength       = 100
	LegalNameMinLength   = 5
	LegalNameMaxLength   = 150
	DescriptionMinLength = 20
	DescriptionMaxLength = 2000
)

var (
	// RFC 5322 simplified; good enough for a lead form, the confirmation
	// email is the real proof of deliverability.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// Brazilian landline or mobile: (XX) XXXX-XXXX or (XX) XXXXX-XXXX.
	phonePattern = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
)

// Validate applies every field rule and the person-type cross-field rules to
// req. It returns nil when the payload is business-valid, otherwise one
// FieldError per violated rule, keyed by the wire field name.
//
// The captcha token is deliberately not inspected here: it is not a form
// field, and its check belongs to the verification stage that runs strictly
// after schema validation.
func Validate(req SubmitRequest) []apperrors.FieldError {
	var errs []apperrors.FieldError
	add := func(field, message string) {
		errs = append(errs, apperrors.FieldError{Field: field, Message: message})
	}

	if !req.PersonType.IsValid() {
		add("tipo_pessoa", "Tipo de pessoa inválido")
	}

	name := strings.TrimSpace(req.FullName)
	switch {
	case len([]rune(name)) < NameMinLength:
		add("nome_completo", "Por favor, informe seu nome completo")
	case len([]rune(name)) > NameMaxLength:
		add("nome_completo", fmt.Sprintf("Nome deve ter no máximo %d caracteres", NameMaxLength))
	case len(strings.Fields(name)) < 2:
		add("nome_completo", "Informe nome e sobrenome")
	}

	switch {
	case req.Email == "":
		add("email", "Por favor, informe seu email")
	case len([]rune(req.Email)) > EmailMaxLength:
		add("email", fmt.Sprintf("Email deve ter no máximo %d caracteres", EmailMaxLength))
	case !emailPattern.MatchString(req.Email):
		add("email", "Por favor, informe um email válido")
	}

	switch {
	case req.Phone == "":
		add("telefone", "Por favor, informe seu telefone")
	case !phonePattern.MatchString(req.Phone):
		add("telefone", "Informe um telefone válido no formato (XX) XXXXX-XXXX")
	}

	// CPF/CNPJ are validated whenever supplied, regardless of person type;
	// requiredness is the cross-field rule below.
	if req.CPF != nil && !taxid.ValidCPF(*req.CPF) {
		add("cpf", "Informe um CPF válido")
	}
	if req.CNPJ != nil && !taxid.ValidCNPJ(*req.CNPJ) {
		add("cnpj", "Informe um CNPJ válido")
	}
	if req.LegalName != nil {
		switch n := len([]rune(strings.TrimSpace(*req.LegalName))); {
		case n < LegalNameMinLength:
			add("razao_social", "Por favor, informe a razão social da empresa")
		case n > LegalNameMaxLength:
			add("razao_social", fmt.Sprintf("Razão social deve ter no máximo %d caracteres", LegalNameMaxLength))
		}
	}

	if strings.TrimSpace(req.LegalArea) == "" {
		add("area_juridica", "Por favor, selecione a área jurídica de interesse")
	}

	switch n := len([]rune(req.Description)); {
	case n < DescriptionMinLength:
		add("descricao_necessidade", "Por favor, forneça mais detalhes sobre sua necessidade")
	case n > DescriptionMaxLength:
		add("descricao_necessidade", fmt.Sprintf("Descrição deve ter no máximo %d caracteres", DescriptionMaxLength))
	}

	if !req.Urgency.IsValid() {
		add("nivel_urgencia", "Nível de urgência inválido")
	}
	if !req.ContactPreference.IsValid() {
		add("preferencia_contato", "Preferência de contato inválida")
	}
	if !req.TimeWindow.IsValid() {
		add("horario_preferencial", "Horário preferencial inválido")
	}

	if !req.AcceptedTerms {
		add("aceite_termos", "É necessário aceitar os termos de uso e política de privacidade")
	}

	switch req.PersonType {
	case PersonIndividual:
		if req.CPF == nil {
			add("cpf", "CPF é obrigatório para pessoa física")
		}
	case PersonCompany:
		if req.CNPJ == nil {
			add("cnpj", "CNPJ é obrigatório para pessoa jurídica")
		}
		if req.LegalName == nil {
			add("razao_social", "Razão social é obrigatória para pessoa jurídica")
		}
	}

	return errs
}
