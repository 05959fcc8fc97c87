package migrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://u:p@localhost:5432/crime", want: "pgx5://u:p@localhost:5432/crime"},
		{in: "postgresql://u:p@db/crime?sslmode=disable", want: "pgx5://u:p@db/crime?sslmode=disable"},
		{in: "pgx5://u:p@db/crime", want: "pgx5://u:p@db/crime"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DriverURL(tt.in))
	}
}
