package metascrub

import (
	"github.com/mhollis/metascrub/internal/action"
	"github.com/mhollis/metascrub/internal/rename"
	"github.com/mhollis/metascrub/internal/scan"
)

// Type aliases re-export internal result types as the public API.

type SkipEntry = scan.SkipEntry
type ItemError = action.ItemError
type RenameResult = rename.Result
type Move = rename.Move
