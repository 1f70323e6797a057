package rawlog

// Every supported schema revision registers itself with the catalog at init.
import (
	_ "github.com/pyranha-labs/atoparser/schema/v1_26"
	_ "github.com/pyranha-labs/atoparser/schema/v2_10"
	_ "github.com/pyranha-labs/atoparser/schema/v2_11"
	_ "github.com/pyranha-labs/atoparser/schema/v2_12"
	_ "github.com/pyranha-labs/atoparser/schema/v2_3"
	_ "github.com/pyranha-labs/atoparser/schema/v2_4"
	_ "github.com/pyranha-labs/atoparser/schema/v2_5"
	_ "github.com/pyranha-labs/atoparser/schema/v2_6"
	_ "github.com/pyranha-labs/atoparser/schema/v2_7"
	_ "github.com/pyranha-labs/atoparser/schema/v2_8"
	_ "github.com/pyranha-labs/atoparser/schema/v2_9"
)
