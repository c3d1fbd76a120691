package diag

import "testing"

func TestDenoiseProducesOutput(t *testing.T) {
	data := make([]byte, 4410) // 2205 samples of mono S16_LE at 22050Hz, 0.1s
	for i := 0; i < len(data); i += 2 {
		data[i] = byte(i % 256)
	}
	out, err := Denoise(data, 1, 22050, 4000)
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Denoise returned no output bytes")
	}
}

func TestDenoiseRejectsCutoffAtOrAboveNyquist(t *testing.T) {
	data := make([]byte, 4410)
	if _, err := Denoise(data, 1, 22050, 20000); err == nil {
		t.Fatal("expected an error for a cutoff near the Nyquist frequency")
	}
}

func TestDenoiseRejectsEmptyInput(t *testing.T) {
	if _, err := Denoise(nil, 1, 22050, 4000); err == nil {
		t.Fatal("expected an error for empty input data")
	}
}

func TestDenoiseStereoChannelCount(t *testing.T) {
	data := make([]byte, 8820) // 2205 stereo frames
	out, err := Denoise(data, 2, 22050, 4000)
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Denoise returned no output bytes")
	}
}
