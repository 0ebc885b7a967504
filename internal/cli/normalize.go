package cli

import (
	"context"

	"github.com/mmr-tortoise/minmax/internal/model"
	"github.com/mmr-tortoise/minmax/internal/pipeline"
)

// runNormalize is the main logic of the root command: it runs the pipeline
// on the fixed paths and converts a failure into a CLIError.
func runNormalize(ctx context.Context) error {
	VerboseLog("Normalizing %s into %s", pipeline.InputPath, pipeline.OutputPath)

	if err := pipeline.Run(ctx, pipeline.InputPath, pipeline.OutputPath, log); err != nil {
		return model.FromPipelineError(err)
	}
	return nil
}
