package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bedrock-fem/bedrock/internal/adapters/telemetry/progrock"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
	"github.com/bedrock-fem/bedrock/internal/core/ports/mocks"
)

func newLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := progrock.New(newLogger(ctrl))
	assert.NotNil(t, recorder)
}

func TestRecord_ContextCarriesVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := progrock.New(newLogger(ctrl))
	defer recorder.Close()

	ctx, vertex := recorder.Record(context.Background(), "clone fiat")
	require.NotNil(t, vertex)

	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, vertex, got)

	_, err := vertex.Stdout().Write([]byte("Cloning into 'fiat'...\n"))
	require.NoError(t, err)
	vertex.Complete(nil)
}

func TestRecord_EchoesOutputThroughLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("collecting numpy").Times(1)
	log.EXPECT().Warn("error: metadata-generation-failed").Times(1)

	recorder := progrock.New(log)
	defer recorder.Close()

	_, vertex := recorder.Record(context.Background(), "install fiat")

	_, err := vertex.Stdout().Write([]byte("collecting numpy\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("error: metadata-generation-failed\n"))
	require.NoError(t, err)
	vertex.Complete(nil)
}

func TestRecord_FlushesPartialLineOnComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("make: *** [all] Error 2").Times(1)

	recorder := progrock.New(log)
	defer recorder.Close()

	_, vertex := recorder.Record(context.Background(), "build strata")

	// No trailing newline; the line must still surface when the step ends.
	_, err := vertex.Stderr().Write([]byte("make: *** [all] Error 2"))
	require.NoError(t, err)
	vertex.Complete(assert.AnError)
}
