package models

type CandidateStatus string

const (
	StatusPending  CandidateStatus = "PENDIENTE"
	StatusAccepted CandidateStatus = "ACEPTADO"
	StatusRejected CandidateStatus = "RECHAZADO"
)

type (
	// Candidate is the payload sent to POST /postulantes. Program ids travel in a
	// separate attach call and are never sent inline.
	Candidate struct {
		GivenNames       string          `json:"nombres"`
		FamilyNames      string          `json:"apellidos"`
		Cedula           string          `json:"cedula"`
		Email            string          `json:"correo"`
		Phone            string          `json:"telefono"`
		Address          string          `json:"direccion"`
		Status           CandidateStatus `json:"estado"`
		ContactAttempts  int             `json:"intentosContacto"`
		BirthDate        string          `json:"fechaNacimiento,omitempty"`
		AcademicPeriodID int64           `json:"periodoAcademicoId,omitempty"`
	}

	// CreatedCandidate is the backend's echo of a created record.
	CreatedCandidate struct {
		ID          int64           `json:"id"`
		GivenNames  string          `json:"nombres"`
		FamilyNames string          `json:"apellidos"`
		Cedula      string          `json:"cedula"`
		Status      CandidateStatus `json:"estado"`
	}

	// ProgramAttachment is the bulk body of POST /postulante_carrera/{id}.
	ProgramAttachment struct {
		ProgramIDs []int64 `json:"carreras"`
	}

	// CandidateDefaults are the fields not collected from the user.
	CandidateDefaults struct {
		Address          string
		BirthDate        string
		AcademicPeriodID int64
	}
)
