package engine

import "errors"

var (
	// ErrInputLoad means the event source could not be read. Fatal before the loop starts.
	ErrInputLoad = errors.New("input load failure")
	// ErrPlaybackDevice means audio is unavailable. The engine keeps running without it.
	ErrPlaybackDevice = errors.New("playback device failure")
	// ErrRenderSurface means the frame could not be presented. Fatal.
	ErrRenderSurface = errors.New("render surface failure")
	// ErrTerminated is returned by Step once the engine has quit.
	ErrTerminated = errors.New("engine terminated")
)
