package identity

import (
	"service/internal/entities"
	proto "service/internal/generated/proto/clients"
)

func toDomain(protoIdentity *proto.Identity) *entities.Identity {
	if protoIdentity == nil {
		return nil
	}

	return &entities.Identity{
		UserID:      protoIdentity.UserId,
		Role:        entities.UserRole(protoIdentity.Role),
		CompanyName: protoIdentity.CompanyName,
	}
}
