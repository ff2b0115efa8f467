// Package domain holds the contact-lead domain values and the shared
// validation rules. Both the server (authoritative) and the submitting client
// (advisory) validate against this single rule source so the two layers
// cannot drift apart.
package domain

import "time"

// PersonType classifies the submitter and gates which identity fields are
// required. Values are the wire literals, accents included.
type PersonType string

const (
	PersonIndividual PersonType = "Física"
	PersonCompany    PersonType = "Jurídica"
)

var validPersonTypes = map[PersonType]bool{
	PersonIndividual: true,
	PersonCompany:    true,
}

// IsValid checks if the person type is one of the supported enum values.
func (p PersonType) IsValid() bool { return validPersonTypes[p] }

func (p PersonType) String() string { return string(p) }

// Urgency is the submitter-declared urgency of the inquiry.
type Urgency string

const (
	UrgencyLow       Urgency = "Baixa"
	UrgencyMedium    Urgency = "Média"
	UrgencyHigh      Urgency = "Alta"
	UrgencyEmergency Urgency = "Emergencial"
)

var validUrgencies = map[Urgency]bool{
	UrgencyLow:       true,
	UrgencyMedium:    true,
	UrgencyHigh:      true,
	UrgencyEmergency: true,
}

// IsValid checks if the urgency is one of the supported enum values.
func (u Urgency) IsValid() bool { return validUrgencies[u] }

func (u Urgency) String() string { return string(u) }

// ContactPreference is the channel the submitter wants to be reached on.
type ContactPreference string

const (
	ContactPhone    ContactPreference = "Telefone"
	ContactEmail    ContactPreference = "Email"
	ContactWhatsApp ContactPreference = "WhatsApp"
	ContactInPerson ContactPreference = "Presencial"
)

var validContactPreferences = map[ContactPreference]bool{
	ContactPhone:    true,
	ContactEmail:    true,
	ContactWhatsApp: true,
	ContactInPerson: true,
}

// IsValid checks if the preference is one of the supported enum values.
func (c ContactPreference) IsValid() bool { return validContactPreferences[c] }

func (c ContactPreference) String() string { return string(c) }

// TimeWindow is the preferred contact window. The display ranges are part of
// the wire value.
type TimeWindow string

const (
	WindowMorning   TimeWindow = "Manhã (8h-12h)"
	WindowAfternoon TimeWindow = "Tarde (12h-18h)"
	WindowEvening   TimeWindow = "Noite (18h-20h)"
)

var validTimeWindows = map[TimeWindow]bool{
	WindowMorning:   true,
	WindowAfternoon: true,
	WindowEvening:   true,
}

// IsValid checks if the window is one of the supported enum values.
func (w TimeWindow) IsValid() bool { return validTimeWindows[w] }

func (w TimeWindow) String() string { return string(w) }

// SourceLandingPage is the acquisition-source tag stamped on every submission
// captured through this service.
const SourceLandingPage = "landing-page"

// SubmitRequest is the user-supplied payload of POST /api/external/contact.
// Field names are the wire contract shared with the landing page.
type SubmitRequest struct {
	PersonType        PersonType        `json:"tipo_pessoa"`
	FullName          string            `json:"nome_completo"`
	Email             string            `json:"email"`
	Phone             string            `json:"telefone"`
	CPF               *string           `json:"cpf,omitempty"`
	CNPJ              *string           `json:"cnpj,omitempty"`
	LegalName         *string           `json:"razao_social,omitempty"`
	LegalArea         string            `json:"area_juridica"`
	Description       string            `json:"descricao_necessidade"`
	Urgency           Urgency           `json:"nivel_urgencia"`
	ContactPreference ContactPreference `json:"preferencia_contato"`
	TimeWindow        TimeWindow        `json:"horario_preferencial"`
	AcceptedTerms     bool              `json:"aceite_termos"`
	Newsletter        bool              `json:"aceite_newsletter"`
	Captcha           string            `json:"captcha"`
}

// Submission is the persisted lead record.
//
// Invariants: ID and Protocol are assigned once at creation and never change;
// exactly one of CPF / (CNPJ + LegalName) is set, according to PersonType; the
// record is immutable after insert.
type Submission struct {
	ID                int64             `json:"id"`
	PersonType        PersonType        `json:"tipo_pessoa"`
	FullName          string            `json:"nome_completo"`
	Email             string            `json:"email"`
	Phone             string            `json:"telefone"`
	CPF               *string           `json:"cpf"`
	CNPJ              *string           `json:"cnpj"`
	LegalName         *string           `json:"razao_social"`
	LegalArea         string            `json:"area_juridica"`
	Description       string            `json:"descricao_necessidade"`
	Urgency           Urgency           `json:"nivel_urgencia"`
	ContactPreference ContactPreference `json:"preferencia_contato"`
	TimeWindow        TimeWindow        `json:"horario_preferencial"`
	AcceptedTerms     bool              `json:"aceite_termos"`
	Newsletter        bool              `json:"aceite_newsletter"`
	SubmittedAt       time.Time         `json:"data_submissao"`
	IPAddress         string            `json:"ip_usuario"`
	UserAgent         string            `json:"user_agent"`
	Source            string            `json:"origem"`
	Protocol          string            `json:"protocolo"`
}
