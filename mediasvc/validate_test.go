package mediasvc

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestValidateUUID(t *testing.T) {
	require.NoError(t, validateUUID("media_id", uuid.NewString()))
	require.ErrorIs(t, validateUUID("media_id", "not-a-uuid"), ErrInvalidArgument)
	require.ErrorIs(t, validateUUID("media_id", ""), ErrInvalidArgument)
}

func TestValidateNonEmpty(t *testing.T) {
	require.NoError(t, validateNonEmpty("name", "cat.jpg"))
	require.ErrorIs(t, validateNonEmpty("name", ""), ErrInvalidArgument)
}

func TestValidatePartNumber(t *testing.T) {
	require.NoError(t, validatePartNumber(1))
	require.NoError(t, validatePartNumber(maxPartNumber))
	require.ErrorIs(t, validatePartNumber(0), ErrInvalidArgument)
	require.ErrorIs(t, validatePartNumber(maxPartNumber+1), ErrInvalidArgument)
}

func TestValidatePartsAscending(t *testing.T) {
	tests := []struct {
		name    string
		parts   []uint32
		wantErr bool
	}{
		{name: "Empty", parts: nil, wantErr: false},
		{name: "Contiguous", parts: []uint32{1, 2, 3}, wantErr: false},
		{name: "Gap", parts: []uint32{1, 3}, wantErr: true},
		{name: "NotStartingAtOne", parts: []uint32{2, 3}, wantErr: true},
		{name: "Descending", parts: []uint32{2, 1}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validatePartsAscending(test.parts)
			if test.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
