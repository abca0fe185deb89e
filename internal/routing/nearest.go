package routing

import (
	"context"
	"fmt"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/sirupsen/logrus"
)

// Resolver selects the fire department reachable in the least road-travel
// distance from a given origin.
type Resolver struct {
	client Client
	logger *logrus.Logger
}

func NewResolver(client Client, logger *logrus.Logger) *Resolver {
	return &Resolver{
		client: client,
		logger: logger,
	}
}

// Nearest returns the candidate with minimum travel distance from origin.
// The provider is called exactly once with the full candidate list, keeping
// network round trips at one regardless of department count. Ties keep the
// first candidate in input order.
func (r *Resolver) Nearest(ctx context.Context, origin models.LatLng, candidates []*models.FireDepartment) (*models.FireDepartment, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	log := r.logger.WithFields(logrus.Fields{
		"component":  "routing",
		"method":     "Nearest",
		"candidates": len(candidates),
	})

	destinations := make([]models.LatLng, len(candidates))
	for i, c := range candidates {
		coord, err := c.Coordinate()
		if err != nil {
			return nil, fmt.Errorf("%w: department %d: %v", ErrUnavailable, c.ID, err)
		}
		destinations[i] = coord
	}

	results, err := r.client.BatchDistances(ctx, origin, destinations)
	if err != nil {
		log.WithError(err).Error("Distance matrix call failed")
		return nil, fmt.Errorf("batch distances: %w", err)
	}

	// A result count that disagrees with the candidate count means the
	// index alignment cannot be trusted; refuse rather than misdispatch.
	if len(results) != len(candidates) {
		log.Errorf("Provider returned %d results for %d candidates", len(results), len(candidates))
		return nil, fmt.Errorf("%w: got %d results for %d candidates", ErrUnavailable, len(results), len(candidates))
	}

	best := -1
	for i, res := range results {
		if !res.OK {
			continue
		}
		if best == -1 || res.DistanceMeters < results[best].DistanceMeters {
			best = i
		}
	}

	if best == -1 {
		log.Error("No routable candidate in distance matrix response")
		return nil, fmt.Errorf("%w: no routable candidates", ErrUnavailable)
	}

	log.WithFields(logrus.Fields{
		"department_id":   candidates[best].ID,
		"distance_meters": results[best].DistanceMeters,
	}).Info("Nearest department resolved")

	return candidates[best], nil
}
