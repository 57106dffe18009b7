package mapper

import (
	"time"

	distributordomain "github.com/Apurer/wastewise-api/internal/domains/distributors/domain"
	distributorports "github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

// Distributor is the transport-level distributor payload. It never carries the password hash.
type Distributor struct {
	ID        string
	Name      string
	Email     string
	Address   string
	CreatedAt time.Time
}

// Registration is the transport-level registration payload.
type Registration struct {
	Name     string
	Email    string
	Password string
	Address  string
}

func ToRegisterInput(reg Registration) distributorports.RegisterInput {
	return distributorports.RegisterInput{
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
		Address:  reg.Address,
	}
}

// FromDomainDistributor converts a domain distributor into a transport representation.
func FromDomainDistributor(d *distributordomain.Distributor) Distributor {
	if d == nil {
		return Distributor{}
	}
	return Distributor{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
	}
}

func FromDomainDistributors(list []*distributordomain.Distributor) []Distributor {
	result := make([]Distributor, 0, len(list))
	for _, d := range list {
		result = append(result, FromDomainDistributor(d))
	}
	return result
}
