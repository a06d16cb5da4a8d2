package user

import (
	"github.com/google/uuid"

	"housemate/models"
)

// ListAddresses retrieves a customer's saved addresses.
func (s *DefaultUserService) ListAddresses(customerID string) ([]models.Address, error) {
	return s.AddressRepo.ListByCustomer(customerID)
}

// CreateAddress saves a new address for a customer. The first address a
// customer saves becomes their default.
func (s *DefaultUserService) CreateAddress(customerID string, addr *models.Address) (*models.Address, error) {
	existing, err := s.AddressRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	addr.ID = uuid.New().String()
	addr.CustomerID = customerID
	if len(existing) == 0 {
		addr.IsDefault = true
	}
	if err := s.AddressRepo.Create(addr); err != nil {
		return nil, err
	}
	if addr.IsDefault && len(existing) > 0 {
		if err := s.AddressRepo.SetDefault(customerID, addr.ID); err != nil {
			return nil, err
		}
	}
	return addr, nil
}

// UpdateAddress patches an address the customer owns.
func (s *DefaultUserService) UpdateAddress(customerID, addressID string, upd *models.AddressUpdate) (*models.Address, error) {
	if err := s.checkOwnership(customerID, addressID); err != nil {
		return nil, err
	}
	addr, err := s.AddressRepo.Patch(addressID, upd)
	if err != nil {
		return nil, err
	}
	if upd.IsDefault != nil && *upd.IsDefault {
		if err := s.AddressRepo.SetDefault(customerID, addressID); err != nil {
			return nil, err
		}
	}
	return addr, nil
}

// DeleteAddress removes an address the customer owns.
func (s *DefaultUserService) DeleteAddress(customerID, addressID string) error {
	if err := s.checkOwnership(customerID, addressID); err != nil {
		return err
	}
	return s.AddressRepo.Delete(addressID)
}

func (s *DefaultUserService) checkOwnership(customerID, addressID string) error {
	addr, err := s.AddressRepo.GetByID(addressID)
	if err != nil {
		return err
	}
	if addr == nil || addr.CustomerID != customerID {
		return errNotOwned(addressID)
	}
	return nil
}

type addressOwnershipError struct{ id string }

func (e *addressOwnershipError) Error() string {
	return "address " + e.id + " does not belong to this customer"
}

func errNotOwned(id string) error { return &addressOwnershipError{id: id} }
