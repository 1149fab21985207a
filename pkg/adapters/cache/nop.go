package cache

import (
	"context"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
)

// Nop is the snapshot cache used when Redis is not configured. Every Get misses.
type Nop struct{}

func (Nop) Get(context.Context, string) (*domain.Hub, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, *domain.Hub) error                  { return nil }
func (Nop) Invalidate(context.Context, string) error                { return nil }

var _ ports.SnapshotCache = Nop{}
