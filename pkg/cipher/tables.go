package cipher

// Substitution tables recovered from the engine executable. They are named after the
// low half of the address each one was found at.
const (
	DC70 Table = "" +
		"\x28\x2d\x91\x73\xf5\x06\xd6\xba\xbf\xf3\x45\x3f\xf1\x61\xb1\xe9" +
		"\xe1\x98\x3d\x6f\x31\x0d\xac\xb1\x08\x83\x9d\x0d\x10\xd1\x41\xf9" +
		"\x00\xba\x1a\xcf\x13\x71\xe4\x86\x21\x2f\x22\xaa\xdd\x4c\x7f\x9b" +
		"\x1f\x9a\xd5\x49\xe9\x34\x89\x56\xa7\x96\x1b\x52\x67\x6a\x6f\x74" +
		"\xcd\x80\x45\xf3\xe7\x2a\x1d\x16\xb2\xf1\x54\xc8\x6c\x2b\x0d\xd4" +
		"\x65\xf7\xe3\x36\xd4\xa5\x3b\xd1\x79\x4c\x54\xf0\x2a\xb4\xb2\x56" +
		"\x45\x2e\xab\x23\x65\xc3\x45\xa0\xc3\x92\x48\x9d\xea\xdd\x31\x2c" +
		"\xe9\xe2\x10\x7b\x88\xc5\xfa\x74\xad\x03\xb8\x9e\xd5\xf5\x6f\xdc" +
		"\xfa\x44\x49\x31\xf6\x83\x32\xff\xc2\xb1\xe9\xe1\x98\x3d\x6f\x31" +
		"\x0d\xac\xb1\x08\x83\x9d\x0d\x10\xd1\x41\xf9\x00\xba\x1a\xcf\x13" +
		"\x71\xe4\x86\x21\x2f\x22\xaa\x6a\x35\xb1\x7e\xd1\xb5\xe7\xec\x7a" +
		"\x6f\x26\x74\x0e\xdb\x27\x4c\xa5\xf1\x0e\x2d\x70\xc4\x40\x5d\x4f" +
		"\xda\x9e\xc5\x49\x7b\xbd\xe8\xdf\xd8\x29\xb9\x16\x3d\x1a\xba\xbf" +
		"\xdf\xd8\x29\xb9\x16\x3d\x1a\x76\xd0\x87\x9b\x2d\x0c\x7b\xd1\xe1" +
		"\xad\xee\xca\xf4\x92\xde\xe4\x76\x10\xdd\x2a\x52\xdc\x73\x4e\x54" +
		"\x8c\x30\x3d\x9a\xb2\x9b\xb8\x93\x29\x55\xfa\x7a\xc9\xda\x10\x97"

	DD70 Table = "" +
		"\x0e\xdb\x27\x4c\xa5\xf1\x0e\x2d\x70\xc4\x40\x5d\x4f\xda\xa0\xc3" +
		"\x92\x48\x9d\xea\xdd\x31\x2c\xe9\xe2\x10\x22\xaa\xd8\x29\xb9\x16" +
		"\x3d\x1a\x76\xd0\x87\x9b\x2d\x0c\x7b\xd1\xe1\xad\x9e\xc5\x49\x7b" +
		"\xbd\xe8\xdf\xee\xca\xf4\x92\xde\xe4\x76\x10\xdd\x2a\x52\xdc\x73" +
		"\x4e\x54\x8c\x30\x3d\x9a\xb2\x9b\xb8\x93\x29\x55\xfa\x7a\xc9\xda" +
		"\x10\x97\xe5\xb6\x23\x02\xdd\x38\x4c\x2c\xc4\x2d\x7f\x9b\x1f\x9a" +
		"\xd5\x49\xe9\x34\x89\x56\xa7\x96\x14\xbe\x2e\xc5\xb1\x7e\xd1\xb5" +
		"\xe7\xe6\xd5\xf5\x06\xd6\xba\xbf\xf3\x45\x3f\xf1\x61\xdd\x54\xc8" +
		"\x2e\xab\x7b\x88\xc5\xfa\x74\xad\x03\xb8\x9e\xd5\xf5\x6f\x6c\x2b" +
		"\x0d\xd4\x65\xf7\xe3\x36\xd4\xa5\x3b\xd1\x79\x4c\x54\xf0\x2a\xb4" +
		"\xb2\x56\x45\xdc\xfa\x44\x49\x31\xf6\x83\x32\xff\xc2\xb1\xe9\xe1" +
		"\x98\x3d\x6f\x31\x0d\xac\xb1\x08\x83\x9d\x0d\x10\xd1\x41\xf9\x00" +
		"\xba\x1a\xcf\x13\x71\xe4\x86\x21\x2f\x23\x65\xc3\x45\xa0\x1b\x52" +
		"\x67\x6a\x6f\x74\xec\x7a\x6f\x26\x74\x0e\xdb\x27\x4c\xa5\xf1\x0e" +
		"\x2d\x70\xc4\x40\x5d\x4f\xda\x9e\xc5\x49\x7b\xbd\xe8\xdf\xd8\x29" +
		"\xb9\x16\x3d\x1a\x76\xd0\x87\x9b\x2d\x0c\x7b\xd1\xe1\xad\xee\xca"

	DE70 Table = "" +
		"\x6a\x35\xb1\x7e\xd1\xb5\xe7\xe6\xd5\xa9\x19\x0f\x28\x2d\xf4\xc3" +
		"\x92\x48\x9d\xea\xdd\x31\x2c\xe9\xe2\x10\x91\x73\x4c\x3e\x08\x5f" +
		"\x47\xa9\xdf\x88\x9f\xd4\xcc\x69\x1f\x30\x9f\xe7\xcd\x80\x45\xf3" +
		"\xe7\x2a\x1d\x16\xb2\xf1\x6a\x35\x67\x6a\x6f\x74\xec\x7a\x6f\x26" +
		"\x74\x92\xde\xe4\x76\x10\xdd\x2a\x52\xdc\x73\x4e\x54\x8c\x30\x3d" +
		"\x9a\xb2\x9b\xb8\x93\x29\x55\xfa\x7a\xc9\xda\x10\x97\xe5\xb6\x23" +
		"\x02\xdd\x38\x4c\x2c\xc4\x2d\x39\x5c\x36\x22\x9f\x91\x73\xf5\x06" +
		"\xd6\xba\xbf\xf3\x45\x3f\xf1\x61\xdd\x4c\x7f\x9b\x1f\x9a\xd5\x49" +
		"\xe9\x34\x89\x56\xa7\x96\x14\xbe\x2e\xc5\x3e\x08\x5f\x47\xa9\xdf" +
		"\x88\x9f\xd4\xcc\x69\x1f\x30\x9f\xe7\xcd\x80\x45\xf3\xe7\x2a\x1d" +
		"\x16\xb2\xf1\x54\xc8\x6c\x2b\x0d\xd4\x65\xf7\xe3\x36\xd4\xa5\x3b" +
		"\xd1\x79\x4c\x54\xf0\x2a\xb4\xb2\x56\x45\x2e\xca\xf4\x92\xde\xe4" +
		"\x76\x10\xdd\x2a\x52\xdc\x73\x4e\x54\x8c\x30\x3d\x9a\xb2\x9b\xb8" +
		"\x93\x29\x55\xfa\x7a\xc9\xda\x10\x97\xab\x23\x65\xc3\x45\xa0\xc3" +
		"\x92\x48\x9d\xea\xdd\x31\x2c\xe9\xe2\x10\x7b\x88\xc5\xfa\x74\xad" +
		"\x03\xb8\x9e\xd5\xf5\x6f\xdc\xfa\x44\x49\x31\xf6\x83\x32\xff\xc2"

	DF70 Table = "" +
		"\xa9\x19\x0f\x28\x2d\x1b\x52\x39\x5c\x36\x22\x9f\x91\x73\x6a\x35" +
		"\x67\x6a\x6f\x74\xec\x7a\x6f\x26\x74\x0e\xdb\x27\x4c\xa5\xf1\x0e" +
		"\x2d\x70\xc4\x40\x5d\x4f\xda\x9e\xc5\x49\x7b\xbd\xe8\xdf\xee\xca" +
		"\xf4\x92\xde\xe4\x76\x10\xdd\x2a\x52\xdc\x73\x4e\x54\x8c\x30\x3d" +
		"\x9a\xb2\x9b\xb8\x93\x29\x55\xfa\x7a\xc9\xda\x10\x97\xe5\xb6\x23" +
		"\x02\xdd\x38\x4c\x2c\xc4\x2d\x7f\x9b\x1f\x9a\xd5\x49\xe9\x34\x89" +
		"\x56\xa7\x96\x14\xbe\x2e\xc5\xb1\x7e\xd1\xb5\xe7\xe6\xd5\xf5\x06" +
		"\xd6\xba\xbf\xf3\x45\x3f\xf1\x61\xdd\x4c\x3e\x08\x5f\x47\xa9\xdf" +
		"\x88\x9f\xd4\xcc\x69\x1f\x30\x9f\xe7\xcd\x80\x45\xf3\xe7\x2a\x1d" +
		"\x16\xb2\xf1\x54\xc8\x6c\x2b\x0d\xd4\x65\xf7\xe3\x36\xd4\xa5\x3b" +
		"\xd1\x79\x4c\x54\xf0\x2a\xb4\xb2\x56\x45\x2e\xab\x7b\x88\xc5\xfa" +
		"\x74\xad\x03\xb8\x9e\xd5\xf5\x6f\xdc\xfa\x44\x22\xaa\xd8\x29\xb9" +
		"\x16\x3d\x1a\x76\xd0\x87\x9b\x2d\x0c\x7b\xd1\xe1\xad\xa9\x19\x0f" +
		"\x28\x2d\x1b\x52\x39\x5c\x36\x22\x9f\x49\x31\xf6\x83\x32\xff\xc2" +
		"\xb1\xe9\xe1\x98\x3d\x6f\x31\x0d\xac\xb1\x08\x83\x9d\x0d\x10\xd1" +
		"\x41\xf9\x00\xba\x1a\xcf\x13\x71\xe4\x86\x21\x2f\x23\x65\xc3\x45"
)
