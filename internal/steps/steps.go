// Package steps lists every step this cog serves.
package steps

import (
	"github.com/stackmoxie/looksy-cog/internal/ports"
	"github.com/stackmoxie/looksy-cog/internal/steps/images"
)

func All() []ports.StepFactory {
	return []ports.StepFactory{
		images.CompareImagesFactory(),
	}
}
