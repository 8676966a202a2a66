package enum

// ClientType distinguishes individual buyers from professional accounts
type ClientType string

const (
	ClientIndividual   ClientType = "Individual"
	ClientProfessional ClientType = "Professional"
)

// IsValid reports whether the client type is one of the known values
func (t ClientType) IsValid() bool {
	return t == ClientIndividual || t == ClientProfessional
}
