// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/lnms-install/internal/core/domain"
)

// DescriptorLoader defines the interface for retrieving descriptor documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=descriptor_loader.go -destination=mocks/mock_descriptor_loader.go -package=mocks
type DescriptorLoader interface {
	// Load obtains the document named by src and parses it.
	//
	// Remote sources are fetched with exactly one blocking request. Every failure
	// wraps domain.ErrDescriptorLoad.
	Load(ctx context.Context, src domain.Source) (*domain.Document, error)
}
