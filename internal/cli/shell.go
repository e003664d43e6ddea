package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/arturybak/google-coding-challenge/internal/app/player"
)

const (
	greeting = "Hello and welcome to YouTube, what would you like to do? " +
		"Enter HELP for list of available commands or EXIT to terminate."
	farewell       = "YouTube has now terminated its execution. Thank you and goodbye!"
	invalidCommand = "Please enter a valid command, type HELP for a list of available commands."
)

// Command describes one shell command. Params are the required arguments;
// tokens beyond them are ignored, except where the command reads an
// optional trailing argument itself (FLAG_VIDEO's reason).
type Command struct {
	Name   string
	Params []string
	Help   string

	run func(p *player.Player, args []string)
}

// Usage renders the command word with its parameter placeholders, e.g.
// "ADD_TO_PLAYLIST <playlist_name> <video_id>".
func (c Command) Usage() string {
	usage := c.Name
	for _, param := range c.Params {
		usage += " <" + param + ">"
	}
	return usage
}

// commandTable is the shell's command set in help order. HELP and EXIT are
// handled by the dispatch loop itself and carry no run function.
var commandTable = []Command{
	{Name: "NUMBER_OF_VIDEOS", Help: "Shows how many videos are in the library.",
		run: func(p *player.Player, _ []string) { p.NumberOfVideos() }},
	{Name: "SHOW_ALL_VIDEOS", Help: "Lists all videos from the library.",
		run: func(p *player.Player, _ []string) { p.ShowAllVideos() }},
	{Name: "PLAY", Params: []string{"video_id"}, Help: "Plays the specified video.",
		run: func(p *player.Player, args []string) { p.PlayVideo(args[0]) }},
	{Name: "PLAY_RANDOM", Help: "Plays a random video from the library.",
		run: func(p *player.Player, _ []string) { p.PlayRandomVideo() }},
	{Name: "STOP", Help: "Stops the current video.",
		run: func(p *player.Player, _ []string) { p.StopVideo() }},
	{Name: "PAUSE", Help: "Pauses the current video.",
		run: func(p *player.Player, _ []string) { p.PauseVideo() }},
	{Name: "CONTINUE", Help: "Resumes the current paused video.",
		run: func(p *player.Player, _ []string) { p.ContinueVideo() }},
	{Name: "SHOW_PLAYING", Help: "Displays the title, url and paused status of the video that is currently playing (or paused).",
		run: func(p *player.Player, _ []string) { p.ShowPlaying() }},
	{Name: "CREATE_PLAYLIST", Params: []string{"playlist_name"}, Help: "Creates a new (empty) playlist with the provided name.",
		run: func(p *player.Player, args []string) { p.CreatePlaylist(args[0]) }},
	{Name: "ADD_TO_PLAYLIST", Params: []string{"playlist_name", "video_id"}, Help: "Adds the requested video to the playlist.",
		run: func(p *player.Player, args []string) { p.AddToPlaylist(args[0], args[1]) }},
	{Name: "REMOVE_FROM_PLAYLIST", Params: []string{"playlist_name", "video_id"}, Help: "Removes the specified video from the specified playlist.",
		run: func(p *player.Player, args []string) { p.RemoveFromPlaylist(args[0], args[1]) }},
	{Name: "CLEAR_PLAYLIST", Params: []string{"playlist_name"}, Help: "Removes all the videos from the playlist.",
		run: func(p *player.Player, args []string) { p.ClearPlaylist(args[0]) }},
	{Name: "DELETE_PLAYLIST", Params: []string{"playlist_name"}, Help: "Deletes the playlist.",
		run: func(p *player.Player, args []string) { p.DeletePlaylist(args[0]) }},
	{Name: "SHOW_PLAYLIST", Params: []string{"playlist_name"}, Help: "Lists all the videos in this playlist.",
		run: func(p *player.Player, args []string) { p.ShowPlaylist(args[0]) }},
	{Name: "SHOW_ALL_PLAYLISTS", Help: "Displays all the available playlists.",
		run: func(p *player.Player, _ []string) { p.ShowAllPlaylists() }},
	{Name: "SEARCH_VIDEOS", Params: []string{"search_term"}, Help: "Displays all videos whose titles contain the search_term.",
		run: func(p *player.Player, args []string) { p.SearchVideos(args[0]) }},
	{Name: "SEARCH_VIDEOS_WITH_TAG", Params: []string{"video_tag"}, Help: "Displays all videos whose tags contain the provided tag.",
		run: func(p *player.Player, args []string) { p.SearchVideosWithTag(args[0]) }},
	{Name: "FLAG_VIDEO", Params: []string{"video_id"}, Help: "Marks a video as flagged, with an optional flag reason.",
		run: func(p *player.Player, args []string) {
			reason := ""
			if len(args) > 1 {
				reason = args[1]
			}
			p.FlagVideo(args[0], reason)
		}},
	{Name: "ALLOW_VIDEO", Params: []string{"video_id"}, Help: "Removes the flag from the specified video.",
		run: func(p *player.Player, args []string) { p.AllowVideo(args[0]) }},
	{Name: "HELP", Help: "Displays help."},
	{Name: "EXIT", Help: "Terminates the program execution."},
}

// Commands returns the shell's command table in help order.
func Commands() []Command {
	out := make([]Command, len(commandTable))
	copy(out, commandTable)
	return out
}

// Shell runs the interactive command loop against the player. Command words
// are case-insensitive; arguments keep their case.
type Shell struct {
	console *Console
	player  *player.Player
	prompt  string

	byName map[string]Command
}

// NewShell creates a shell driving the player through the console.
func NewShell(console *Console, p *player.Player, prompt string) *Shell {
	byName := make(map[string]Command, len(commandTable))
	for _, cmd := range commandTable {
		byName[cmd.Name] = cmd
	}
	return &Shell{console: console, player: p, prompt: prompt, byName: byName}
}

// Run reads and executes commands until EXIT or the end of input. Both end
// the loop with the farewell line; only a broken input stream is an error.
func (s *Shell) Run() error {
	sessionID := uuid.NewString()
	zlog.Info().Msgf("shell: session started: id=%s", sessionID)

	s.console.WriteLine(greeting)
	for {
		s.console.Write(s.prompt)
		line, err := s.console.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return errors.Wrap(err, "failed to read command")
		}
		if exit := s.dispatch(line); exit {
			break
		}
	}

	s.console.WriteLine(farewell)
	zlog.Info().Msgf("shell: session ended: id=%s", sessionID)
	return nil
}

// dispatch executes one input line and reports whether the shell should
// exit.
func (s *Shell) dispatch(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		s.console.WriteLine(invalidCommand)
		return false
	}

	name := strings.ToUpper(tokens[0])
	cmd, ok := s.byName[name]
	if !ok {
		s.console.WriteLine(invalidCommand)
		return false
	}

	switch name {
	case "EXIT":
		return true
	case "HELP":
		s.printHelp()
		return false
	}

	args := tokens[1:]
	if len(args) < len(cmd.Params) {
		var params []string
		for _, param := range cmd.Params {
			params = append(params, "<"+param+">")
		}
		s.console.WriteLine(fmt.Sprintf("Please enter %s command followed by %s.", cmd.Name, strings.Join(params, " ")))
		return false
	}

	zlog.Debug().Msgf("shell: executing command: name=%s args=%v", name, args)
	cmd.run(s.player, args)
	return false
}

func (s *Shell) printHelp() {
	s.console.WriteLine("Available commands:")
	for _, cmd := range commandTable {
		s.console.WriteLine(fmt.Sprintf("  %s: %s", cmd.Usage(), cmd.Help))
	}
}
