//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identity_test
package identity

import (
	"context"

	"google.golang.org/grpc"
	proto "service/internal/generated/proto/clients"
)

type client interface {
	VerifyToken(ctx context.Context, in *proto.VerifyTokenRequest, opts ...grpc.CallOption) (*proto.VerifyTokenResponse, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
