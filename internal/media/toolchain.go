package media

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Toolchain holds the resolved ffmpeg/ffprobe binaries. It is resolved
// once at startup and passed to every component that shells out; nothing
// re-derives binary locations per call.
type Toolchain struct {
	FFmpeg  string
	FFprobe string
}

// ResolveToolchain locates ffmpeg and ffprobe using a prioritized chain:
// explicit config path, FFMPEG_PATH/FFPROBE_PATH env vars, a bundled
// binary directory with per-OS subdirectories, the system PATH, and
// finally the bare platform default name.
func ResolveToolchain(ffmpegPath, ffprobePath, bundleDir string) Toolchain {
	return Toolchain{
		FFmpeg:  resolveBinary(ffmpegPath, "FFMPEG_PATH", bundleDir, "ffmpeg"),
		FFprobe: resolveBinary(ffprobePath, "FFPROBE_PATH", bundleDir, "ffprobe"),
	}
}

func resolveBinary(configured, envVar, bundleDir, name string) string {
	if configured != "" {
		return configured
	}

	if p := os.Getenv(envVar); p != "" {
		return p
	}

	if bundleDir != "" {
		if p := bundledPath(bundleDir, name); p != "" {
			return p
		}
	}

	if p, err := exec.LookPath(platformName(name)); err == nil {
		return p
	}

	return platformName(name)
}

func bundledPath(bundleDir, name string) string {
	sub := "linux"
	if runtime.GOOS == "windows" {
		sub = "win"
	}

	p := filepath.Join(bundleDir, sub, platformName(name))
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func platformName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
