package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/wastewise-api/internal/domains/locations/domain"
)

// ErrInvalidLocation wraps every lookup failure so adapters can answer 400.
var ErrInvalidLocation = errors.New("invalid location")

// Service exposes the location reference lookups.
type Service struct {
	directory *domain.Directory
}

// NewService serves lookups from dir, or from the built-in table when dir is nil.
func NewService(dir *domain.Directory) *Service {
	if dir == nil {
		dir = domain.NewDirectory(nil)
	}
	return &Service{directory: dir}
}

func (s *Service) DistrictOptions() []string {
	return s.directory.Districts()
}

func (s *Service) CitiesByDistrict(district string) ([]string, error) {
	cities, err := s.directory.Cities(district)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}
	return cities, nil
}

func (s *Service) ValidateLocation(district, city string) error {
	if err := s.directory.Validate(district, city); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}
	return nil
}
