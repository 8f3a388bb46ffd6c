package cloudinary

import (
	"net/url"
	"testing"
)

func TestSignParams(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
		secret string
		want   string
	}{
		{
			name:   "upload params",
			params: url.Values{"folder": {"video-uploads"}, "timestamp": {"1740830400"}},
			secret: "s3cr3t",
			want:   "5eb12da369af20e9125861855f5ea3cfac515bf9",
		},
		{
			name:   "destroy params",
			params: url.Values{"public_id": {"p1"}, "timestamp": {"1740830400"}},
			secret: "s3cr3t",
			want:   "fb28651a382a044296198b0871116019aa45a6ef",
		},
		{
			name:   "single param",
			params: url.Values{"timestamp": {"1700000000"}},
			secret: "secret",
			want:   "84af3c6077e429a8e7ff26d2ca13d5feb6bc7cb0",
		},
		{
			name:   "keys are sorted",
			params: url.Values{"b": {"2"}, "a": {"1"}},
			secret: "secret",
			want:   "69021e767b8b2f38af0bcc5fcefee075eb2ec60d",
		},
		{
			name:   "multiple values joined with comma",
			params: url.Values{"a": {"x", "y"}},
			secret: "secret",
			want:   "a1519523883618e962b06fd9bae51c1f5af4d73a",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SignParams(tc.params, tc.secret); got != tc.want {
				t.Errorf("SignParams() = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestSignParams_Deterministic(t *testing.T) {
	params := url.Values{"folder": {"f"}, "timestamp": {"123"}}
	first := SignParams(params, "secret")
	second := SignParams(params, "secret")
	if first != second {
		t.Errorf("signatures differ: %q vs %q", first, second)
	}
	if first == SignParams(params, "other") {
		t.Error("expected a different secret to change the signature")
	}
}
