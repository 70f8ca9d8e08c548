package service

import (
	"fmt"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
)

func validateClient(client entity.Client) error {
	if client.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrIncorrectRequestBody)
	}

	if client.ContactEmail == "" {
		return fmt.Errorf("%w: contact email is required", entity.ErrIncorrectRequestBody)
	}

	if client.Status != "" && !client.Status.IsValid() {
		return fmt.Errorf("%w: status %q", entity.ErrIncorrectRequestBody, client.Status)
	}

	return nil
}

func validateBillLink(link entity.BillLink) error {
	if link.ClientID.IsNil() || link.BillID.IsNil() {
		return fmt.Errorf("%w: client and bill ids are required", entity.ErrIncorrectRequestBody)
	}

	if !link.Position.IsValid() {
		return fmt.Errorf("%w: position %q", entity.ErrIncorrectRequestBody, link.Position)
	}

	if link.PriorityOverride != "" && !link.PriorityOverride.IsValid() {
		return fmt.Errorf("%w: priority override %q", entity.ErrIncorrectRequestBody, link.PriorityOverride)
	}

	return nil
}
