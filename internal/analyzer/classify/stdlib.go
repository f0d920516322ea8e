package classify

// Names the C standard library provides. Checks treat them as declared.

var standardFunctions = map[string]bool{
	// stdio.h
	"printf": true, "scanf": true, "fprintf": true, "fscanf": true,
	"sprintf": true, "snprintf": true, "sscanf": true, "puts": true,
	"gets": true, "fgets": true, "fputs": true, "putchar": true,
	"getchar": true, "fopen": true, "fclose": true, "fread": true,
	"fwrite": true, "fflush": true, "fseek": true, "ftell": true,
	"rewind": true, "feof": true, "ferror": true, "perror": true,
	"remove": true, "rename": true, "getc": true, "putc": true,
	"fgetc": true, "fputc": true,

	// stdlib.h
	"malloc": true, "calloc": true, "realloc": true, "free": true,
	"exit": true, "abort": true, "atoi": true, "atof": true, "atol": true,
	"strtol": true, "strtod": true, "rand": true, "srand": true,
	"abs": true, "qsort": true, "bsearch": true, "system": true,
	"getenv": true,

	// string.h
	"strlen": true, "strcpy": true, "strncpy": true, "strcat": true,
	"strncat": true, "strcmp": true, "strncmp": true, "strchr": true,
	"strrchr": true, "strstr": true, "strtok": true, "memcpy": true,
	"memmove": true, "memset": true, "memcmp": true,

	// ctype.h
	"isalpha": true, "isdigit": true, "isalnum": true, "isspace": true,
	"isupper": true, "islower": true, "toupper": true, "tolower": true,

	// math.h
	"sqrt": true, "pow": true, "sin": true, "cos": true, "tan": true,
	"fabs": true, "floor": true, "ceil": true, "log": true, "exp": true,

	// time.h, assert.h
	"time": true, "clock": true, "assert": true,
}

var standardIdentifiers = map[string]bool{
	"NULL": true, "EOF": true, "stdin": true, "stdout": true, "stderr": true,
	"true": true, "false": true, "errno": true, "RAND_MAX": true,
	"EXIT_SUCCESS": true, "EXIT_FAILURE": true, "INT_MAX": true,
	"INT_MIN": true, "CHAR_BIT": true, "SEEK_SET": true, "SEEK_CUR": true,
	"SEEK_END": true, "CLOCKS_PER_SEC": true,
}

var standardTypes = map[string]bool{
	"FILE": true, "size_t": true, "bool": true, "ptrdiff_t": true,
	"time_t": true, "clock_t": true,
	"int8_t": true, "int16_t": true, "int32_t": true, "int64_t": true,
	"uint8_t": true, "uint16_t": true, "uint32_t": true, "uint64_t": true,
}

func IsStandardFunction(name string) bool   { return standardFunctions[name] }
func IsStandardIdentifier(name string) bool { return standardIdentifiers[name] }
func IsStandardType(name string) bool       { return standardTypes[name] }
