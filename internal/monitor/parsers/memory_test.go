package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemInfo(t *testing.T) {
	tests := []struct {
		name        string
		procMeminfo string
		want        MemInfo
		wantErr     bool
	}{
		{
			name: "valid meminfo",
			procMeminfo: `MemTotal:       16384000 kB
MemFree:         1234567 kB
MemAvailable:    8765432 kB
Buffers:          123456 kB
Cached:          4567890 kB
SwapTotal:       2097148 kB`,
			want: MemInfo{
				TotalBytes:     16384000 * 1024,
				FreeBytes:      1234567 * 1024,
				AvailableBytes: 8765432 * 1024,
			},
		},
		{
			// 1000 kB total and 400 kB available convert to 1,024,000 and
			// 409,600 bytes.
			name: "kibibyte conversion",
			procMeminfo: `MemTotal:       1000 kB
MemAvailable:   400 kB`,
			want: MemInfo{
				TotalBytes:     1024000,
				AvailableBytes: 409600,
			},
		},
		{
			name: "no MemAvailable on old kernel",
			procMeminfo: `MemTotal:       8000000 kB
MemFree:         500000 kB
Buffers:          50000 kB`,
			want: MemInfo{
				TotalBytes: 8000000 * 1024,
				FreeBytes:  500000 * 1024,
			},
		},
		{
			name: "missing MemTotal",
			procMeminfo: `MemFree:         500000 kB
MemAvailable:   2000000 kB`,
			wantErr: true,
		},
		{
			name:        "malformed MemTotal",
			procMeminfo: "MemTotal:       lots kB",
			wantErr:     true,
		},
		{
			name:        "empty input",
			procMeminfo: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseMemInfo(tt.procMeminfo)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, info)
		})
	}
}

func TestParseMemInfo_IgnoresUnrelatedLines(t *testing.T) {
	procMeminfo := `MemTotal:       4000000 kB
garbage line without colon
HugePages_Total:       0
MemFree:         100000 kB
DirectMap4k:      300000 kB`

	info, err := ParseMemInfo(procMeminfo)
	require.NoError(t, err)
	assert.Equal(t, uint64(4000000*1024), info.TotalBytes)
	assert.Equal(t, uint64(100000*1024), info.FreeBytes)
	assert.Zero(t, info.AvailableBytes)
}
