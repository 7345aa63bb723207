package services

import (
	"context"
	"fmt"

	"github.com/bookora/bookora_backend/internal/apperrors"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
)

// requirePermission runs the RBAC capability check and converts a negative
// answer into ErrForbidden.
func requirePermission(ctx context.Context, checker portssvc.PermissionChecker, userID, module, action string) error {
	ok, err := checker.HasPermission(ctx, userID, module, action)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: missing permission %s.%s", apperrors.ErrForbidden, module, action)
	}
	return nil
}

// dedupeStrings returns the input with exact duplicates removed, preserving
// first-seen order.
func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
