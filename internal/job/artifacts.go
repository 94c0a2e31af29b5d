package job

import "vidscribe/internal/scanner"

// ArtifactSet names every path a file's jobs may touch. Only the final
// paths may survive a job run; the temporary paths are removed on every
// exit, success or failure.
type ArtifactSet struct {
	FinalSubtitle string
	TempWaveform  string
	TempSubtitle  string
	FinalSummary  string
}

// ArtifactsFor derives the artifact paths co-located with a media file.
func ArtifactsFor(m scanner.MediaFile) ArtifactSet {
	stem := m.Stem()
	return ArtifactSet{
		FinalSubtitle: stem + ".srt",
		TempWaveform:  stem + ".temp.wav",
		TempSubtitle:  stem + ".temp.srt",
		FinalSummary:  stem + "_summary.txt",
	}
}
