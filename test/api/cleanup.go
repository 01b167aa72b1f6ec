/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"fmt"
	"slices"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// ItemRegistry records the items a single spec created so they can be
// removed when it exits. It is not safe for concurrent use, each spec owns
// its own.
type ItemRegistry struct {
	deleter ItemDeleter
	ids     []int64
}

// NewItemRegistry returns an empty registry that deletes through deleter.
func NewItemRegistry(deleter ItemDeleter) *ItemRegistry {
	return &ItemRegistry{
		deleter: deleter,
	}
}

// Track records an item for deletion, recording the same id twice is a no-op.
func (r *ItemRegistry) Track(id int64) {
	if slices.Contains(r.ids, id) {
		return
	}

	r.ids = append(r.ids, id)
}

// IDs returns the tracked ids in creation order.
func (r *ItemRegistry) IDs() []int64 {
	return slices.Clone(r.ids)
}

// Release deletes every tracked item in creation order. Every deletion is
// attempted even if an earlier one fails. Items that are already gone are
// not an error, any other failures are returned as an aggregate. The
// registry is empty afterwards.
func (r *ItemRegistry) Release(ctx context.Context) error {
	var errs []error

	for _, id := range r.ids {
		if err := r.deleter.DeleteItem(ctx, id); err != nil {
			if IsNotFound(err) {
				continue
			}

			errs = append(errs, fmt.Errorf("item %d: %w", id, err))
		}
	}

	r.ids = nil

	return utilerrors.NewAggregate(errs)
}
