package annotate

// Block is the decorative comment inserted after each qualifying run of
// code lines. It is inserted byte-for-byte, including its trailing newline.
const Block = `/**
 

      _                _            _      _                            
  ___| |__   ___  __ _| |_ ___ _ __| |    | | _____      __   ___  __ _ 
 / __| '_ \ / _ \/ _` + "`" + ` | __/ _ \ '__| |    | |/ _ \ \ /\ / /  / _ \/ _` + "`" + ` |
| (__| | | |  __/ (_| | ||  __/ |  |_|    | | (_) \ V  V /  |  __/ (_| |
 \___|_| |_|\___|\__,_|\__\___|_|  (_)    |_|\___/ \_/\_/    \___|\__, |
                                                                     |_|

**/
`
