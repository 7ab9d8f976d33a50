package imx290

// Register tables for the IMX290/IMX327. Order is significant and must be
// preserved on apply. Values are taken from the sensor reference manuals;
// conditioned entries select between frame-rate classes, lane counts and
// input clock classes at apply time.

var globalInitSettings = []regval{
	// frsel
	{0x3009, 0x01, cond5060FPS},
	{0x3009, 0x02, cond2530FPS},

	// repetition
	{0x3405, 0x10, cond2530FPS | cond2Lanes},
	{0x3405, 0x00, cond5060FPS | cond2Lanes},
	{0x3405, 0x20, cond2530FPS | cond4Lanes},
	{0x3405, 0x10, cond5060FPS | cond4Lanes},

	{0x3040, 0x00, 0},
	{0x3041, 0x00, 0},
	{0x303c, 0x00, 0},
	{0x303d, 0x00, 0},
	{0x3042, 0x9c, 0},
	{0x3043, 0x07, 0},
	{0x303e, 0x49, 0},
	{0x303f, 0x04, 0},
	{0x304b, 0x0a, 0},
}

var mode1080pSettings = []regval{
	// mode settings
	{0x3007, 0x00, 0},

	// hmax
	{0x301c, 0xa0, cond25FPS},
	{0x301d, 0x14, cond25FPS},

	{0x301c, 0x30, cond30FPS},
	{0x301d, 0x11, cond30FPS},

	{0x301c, 0x50, cond50FPS},
	{0x301d, 0x0a, cond50FPS},

	{0x301c, 0x98, cond60FPS},
	{0x301d, 0x08, cond60FPS},

	// vmax
	{0x3018, 0x65, 0},
	{0x3019, 0x04, 0},
	{0x301a, 0x00, 0},

	{0x303a, 0x0c, 0},
	{0x3414, 0x0a, 0},
	{0x3472, 0x80, 0},
	{0x3473, 0x07, 0},
	{0x3418, 0x38, 0},
	{0x3419, 0x04, 0},

	{0x3012, 0x64, 0},
	{0x3013, 0x00, 0},

	{0x305c, 0x18, condInck37},
	{0x305d, 0x03, condInck37},
	{0x305e, 0x20, condInck37},
	{0x305f, 0x01, condInck37},
	{0x315e, 0x1a, condInck37},
	{0x3164, 0x1a, condInck37},
	{0x3444, 0x20, condInck37},
	{0x3445, 0x25, condInck37},
	{0x3480, 0x49, condInck37},

	{0x305c, 0x0c, condInck74},
	{0x305d, 0x03, condInck74},
	{0x305e, 0x10, condInck74},
	{0x305f, 0x01, condInck74},
	{0x315e, 0x1b, condInck74},
	{0x3164, 0x1b, condInck74},
	{0x3444, 0x40, condInck74},
	{0x3445, 0x4a, condInck74},
	{0x3480, 0x92, condInck74},

	// data rate settings

	// mipi timing - 2 lane, 25/30 fps
	{0x3446, 0x57, cond2530FPS | cond2Lanes},
	{0x3447, 0x00, cond2530FPS | cond2Lanes},
	{0x3448, 0x37, cond2530FPS | cond2Lanes},
	{0x3449, 0x00, cond2530FPS | cond2Lanes},
	{0x344a, 0x1f, cond2530FPS | cond2Lanes},
	{0x344b, 0x00, cond2530FPS | cond2Lanes},
	{0x344c, 0x1f, cond2530FPS | cond2Lanes},
	{0x344d, 0x00, cond2530FPS | cond2Lanes},
	{0x344e, 0x1f, cond2530FPS | cond2Lanes},
	{0x344f, 0x00, cond2530FPS | cond2Lanes},
	{0x3450, 0x77, cond2530FPS | cond2Lanes},
	{0x3451, 0x00, cond2530FPS | cond2Lanes},
	{0x3452, 0x1f, cond2530FPS | cond2Lanes},
	{0x3453, 0x00, cond2530FPS | cond2Lanes},
	{0x3454, 0x17, cond2530FPS | cond2Lanes},
	{0x3455, 0x00, cond2530FPS | cond2Lanes},

	// mipi timing - 2 lane, 50/60 fps
	{0x3446, 0x77, cond5060FPS | cond2Lanes},
	{0x3447, 0x00, cond5060FPS | cond2Lanes},
	{0x3448, 0x67, cond5060FPS | cond2Lanes},
	{0x3449, 0x00, cond5060FPS | cond2Lanes},
	{0x344a, 0x47, cond5060FPS | cond2Lanes},
	{0x344b, 0x00, cond5060FPS | cond2Lanes},
	{0x344c, 0x37, cond5060FPS | cond2Lanes},
	{0x344d, 0x00, cond5060FPS | cond2Lanes},
	{0x344e, 0x3f, cond5060FPS | cond2Lanes},
	{0x344f, 0x00, cond5060FPS | cond2Lanes},
	{0x3450, 0xff, cond5060FPS | cond2Lanes},
	{0x3451, 0x00, cond5060FPS | cond2Lanes},
	{0x3452, 0x3f, cond5060FPS | cond2Lanes},
	{0x3453, 0x00, cond5060FPS | cond2Lanes},
	{0x3454, 0x37, cond5060FPS | cond2Lanes},
	{0x3455, 0x00, cond5060FPS | cond2Lanes},

	// mipi timing - 4 lane, 25/30 fps
	{0x3446, 0x47, cond2530FPS | cond4Lanes},
	{0x3447, 0x00, cond2530FPS | cond4Lanes},
	{0x3448, 0x1f, cond2530FPS | cond4Lanes},
	{0x3449, 0x00, cond2530FPS | cond4Lanes},
	{0x344a, 0x17, cond2530FPS | cond4Lanes},
	{0x344b, 0x00, cond2530FPS | cond4Lanes},
	{0x344c, 0x0f, cond2530FPS | cond4Lanes},
	{0x344d, 0x00, cond2530FPS | cond4Lanes},
	{0x344e, 0x17, cond2530FPS | cond4Lanes},
	{0x344f, 0x00, cond2530FPS | cond4Lanes},
	{0x3450, 0x47, cond2530FPS | cond4Lanes},
	{0x3451, 0x00, cond2530FPS | cond4Lanes},
	{0x3452, 0x0f, cond2530FPS | cond4Lanes},
	{0x3453, 0x00, cond2530FPS | cond4Lanes},
	{0x3454, 0x0f, cond2530FPS | cond4Lanes},
	{0x3455, 0x00, cond2530FPS | cond4Lanes},

	// mipi timing - 4 lane, 50/60 fps
	{0x3446, 0x57, cond5060FPS | cond4Lanes},
	{0x3447, 0x00, cond5060FPS | cond4Lanes},
	{0x3448, 0x37, cond5060FPS | cond4Lanes},
	{0x3449, 0x00, cond5060FPS | cond4Lanes},
	{0x344a, 0x1f, cond5060FPS | cond4Lanes},
	{0x344b, 0x00, cond5060FPS | cond4Lanes},
	{0x344c, 0x1f, cond5060FPS | cond4Lanes},
	{0x344d, 0x00, cond5060FPS | cond4Lanes},
	{0x344e, 0x1f, cond5060FPS | cond4Lanes},
	{0x344f, 0x00, cond5060FPS | cond4Lanes},
	{0x3450, 0x77, cond5060FPS | cond4Lanes},
	{0x3451, 0x00, cond5060FPS | cond4Lanes},
	{0x3452, 0x1f, cond5060FPS | cond4Lanes},
	{0x3453, 0x00, cond5060FPS | cond4Lanes},
	{0x3454, 0x17, cond5060FPS | cond4Lanes},
	{0x3455, 0x00, cond5060FPS | cond4Lanes},
}

var mode720pSettings = []regval{
	// mode settings
	{0x3007, 0x10, 0},

	// hmax
	{0x301c, 0xf0, cond25FPS},
	{0x301d, 0x1e, cond25FPS},

	{0x301c, 0xc8, cond30FPS},
	{0x301d, 0x19, cond30FPS},

	{0x301c, 0x78, cond50FPS},
	{0x301d, 0x0f, cond50FPS},

	{0x301c, 0xe4, cond60FPS},
	{0x301d, 0x0c, cond60FPS},

	// vmax
	{0x3018, 0xee, 0},
	{0x3019, 0x02, 0},
	{0x301a, 0x00, 0},

	{0x303a, 0x06, 0},
	{0x3414, 0x04, 0},
	{0x3472, 0x00, 0},
	{0x3473, 0x05, 0},
	{0x3418, 0xd0, 0},
	{0x3419, 0x02, 0},

	{0x3012, 0x64, 0},
	{0x3013, 0x00, 0},

	{0x305c, 0x20, condInck37},
	{0x305d, 0x00, condInck37},
	{0x305e, 0x20, condInck37},
	{0x305f, 0x01, condInck37},
	{0x315e, 0x1a, condInck37},
	{0x3164, 0x1a, condInck37},
	{0x3444, 0x20, condInck37},
	{0x3445, 0x25, condInck37},
	{0x3480, 0x49, condInck37},

	{0x305c, 0x10, condInck74},
	{0x305d, 0x00, condInck74},
	{0x305e, 0x10, condInck74},
	{0x305f, 0x01, condInck74},
	{0x315e, 0x1b, condInck74},
	{0x3164, 0x1b, condInck74},
	{0x3444, 0x40, condInck74},
	{0x3445, 0x4a, condInck74},
	{0x3480, 0x92, condInck74},

	// data rate settings

	// mipi timing - 2 lane, 25/30 fps
	{0x3446, 0x4f, cond2530FPS | cond2Lanes},
	{0x3447, 0x00, cond2530FPS | cond2Lanes},
	{0x3448, 0x2f, cond2530FPS | cond2Lanes},
	{0x3449, 0x00, cond2530FPS | cond2Lanes},
	{0x344a, 0x17, cond2530FPS | cond2Lanes},
	{0x344b, 0x00, cond2530FPS | cond2Lanes},
	{0x344c, 0x17, cond2530FPS | cond2Lanes},
	{0x344d, 0x00, cond2530FPS | cond2Lanes},
	{0x344e, 0x17, cond2530FPS | cond2Lanes},
	{0x344f, 0x00, cond2530FPS | cond2Lanes},
	{0x3450, 0x57, cond2530FPS | cond2Lanes},
	{0x3451, 0x00, cond2530FPS | cond2Lanes},
	{0x3452, 0x17, cond2530FPS | cond2Lanes},
	{0x3453, 0x00, cond2530FPS | cond2Lanes},
	{0x3454, 0x17, cond2530FPS | cond2Lanes},
	{0x3455, 0x00, cond2530FPS | cond2Lanes},

	// mipi timing - 2 lane, 50/60 fps
	{0x3446, 0x67, cond5060FPS | cond2Lanes},
	{0x3447, 0x00, cond5060FPS | cond2Lanes},
	{0x3448, 0x57, cond5060FPS | cond2Lanes},
	{0x3449, 0x00, cond5060FPS | cond2Lanes},
	{0x344a, 0x2f, cond5060FPS | cond2Lanes},
	{0x344b, 0x00, cond5060FPS | cond2Lanes},
	{0x344c, 0x27, cond5060FPS | cond2Lanes},
	{0x344d, 0x00, cond5060FPS | cond2Lanes},
	{0x344e, 0x2f, cond5060FPS | cond2Lanes},
	{0x344f, 0x00, cond5060FPS | cond2Lanes},
	{0x3450, 0xbf, cond5060FPS | cond2Lanes},
	{0x3451, 0x00, cond5060FPS | cond2Lanes},
	{0x3452, 0x2f, cond5060FPS | cond2Lanes},
	{0x3453, 0x00, cond5060FPS | cond2Lanes},
	{0x3454, 0x27, cond5060FPS | cond2Lanes},
	{0x3455, 0x00, cond5060FPS | cond2Lanes},

	// mipi timing - 4 lane, 25/30 fps
	{0x3446, 0x47, cond2530FPS | cond4Lanes},
	{0x3447, 0x00, cond2530FPS | cond4Lanes},
	{0x3448, 0x17, cond2530FPS | cond4Lanes},
	{0x3449, 0x00, cond2530FPS | cond4Lanes},
	{0x344a, 0x0f, cond2530FPS | cond4Lanes},
	{0x344b, 0x00, cond2530FPS | cond4Lanes},
	{0x344c, 0x0f, cond2530FPS | cond4Lanes},
	{0x344d, 0x00, cond2530FPS | cond4Lanes},
	{0x344e, 0x0f, cond2530FPS | cond4Lanes},
	{0x344f, 0x00, cond2530FPS | cond4Lanes},
	{0x3450, 0x2b, cond2530FPS | cond4Lanes},
	{0x3451, 0x00, cond2530FPS | cond4Lanes},
	{0x3452, 0x0b, cond2530FPS | cond4Lanes},
	{0x3453, 0x00, cond2530FPS | cond4Lanes},
	{0x3454, 0x0f, cond2530FPS | cond4Lanes},
	{0x3455, 0x00, cond2530FPS | cond4Lanes},

	// mipi timing - 4 lane, 50/60 fps
	{0x3446, 0x4f, cond5060FPS | cond4Lanes},
	{0x3447, 0x00, cond5060FPS | cond4Lanes},
	{0x3448, 0x2f, cond5060FPS | cond4Lanes},
	{0x3449, 0x00, cond5060FPS | cond4Lanes},
	{0x344a, 0x17, cond5060FPS | cond4Lanes},
	{0x344b, 0x00, cond5060FPS | cond4Lanes},
	{0x344c, 0x17, cond5060FPS | cond4Lanes},
	{0x344d, 0x00, cond5060FPS | cond4Lanes},
	{0x344e, 0x17, cond5060FPS | cond4Lanes},
	{0x344f, 0x00, cond5060FPS | cond4Lanes},
	{0x3450, 0x57, cond5060FPS | cond4Lanes},
	{0x3451, 0x00, cond5060FPS | cond4Lanes},
	{0x3452, 0x17, cond5060FPS | cond4Lanes},
	{0x3453, 0x00, cond5060FPS | cond4Lanes},
	{0x3454, 0x17, cond5060FPS | cond4Lanes},
	{0x3455, 0x00, cond5060FPS | cond4Lanes},
}

var poweronSettings = []regval{
	{0x3000, 0x01, 0},
	{0x3001, 0x00, 0},
	{0x3002, 0x01, 0},

	// physical-lane-num
	{0x3407, 0x01, cond2Lanes},
	{0x3407, 0x03, cond4Lanes},

	// csi-lane-num
	{0x3443, 0x01, cond2Lanes},
	{0x3443, 0x03, cond4Lanes},
}

// The red "Set to" values in the IMX290 reference manual v0.5.0 (2018-07-22)
var model290Settings = []regval{
	{0x300f, 0x00, 0},
	{0x3010, 0x21, 0},
	{0x3012, 0x64, 0},
	{0x3016, 0x09, 0},
	{0x3070, 0x02, 0},
	{0x3071, 0x11, 0},
	{0x309b, 0x10, 0},
	{0x309c, 0x22, 0},
	{0x30a2, 0x02, 0},
	{0x30a6, 0x20, 0},
	{0x30a8, 0x20, 0},
	{0x30aa, 0x20, 0},
	{0x30ac, 0x20, 0},
	{0x30b0, 0x43, 0},
	{0x3119, 0x9e, 0},
	{0x311c, 0x1e, 0},
	{0x311e, 0x08, 0},
	{0x3128, 0x05, 0},
	{0x313d, 0x83, 0},
	{0x3150, 0x03, 0},
	{0x317e, 0x00, 0},
	{0x32b8, 0x50, 0},
	{0x32b9, 0x10, 0},
	{0x32ba, 0x00, 0},
	{0x32bb, 0x04, 0},
	{0x32c8, 0x50, 0},
	{0x32c9, 0x10, 0},
	{0x32ca, 0x00, 0},
	{0x32cb, 0x04, 0},
	{0x332c, 0xd3, 0},
	{0x332d, 0x10, 0},
	{0x332e, 0x0d, 0},
	{0x3358, 0x06, 0},
	{0x3359, 0xe1, 0},
	{0x335a, 0x11, 0},
	{0x3360, 0x1e, 0},
	{0x3361, 0x61, 0},
	{0x3362, 0x10, 0},
	{0x33b0, 0x50, 0},
	{0x33b2, 0x1a, 0},
	{0x33b3, 0x04, 0},
}

// The red "Set to" values in the IMX327 reference manual v0.2 (2017-05-25)
var model327Settings = []regval{
	{0x3011, 0x0a, 0},
	{0x309e, 0x4a, 0},
	{0x309f, 0x4a, 0},
	{0x3128, 0x04, 0},
	{0x313b, 0x41, 0},
}

var settings10bit = []regval{
	{0x3005, 0x00, 0},
	{0x3046, 0x00, 0},
	{0x3129, 0x1d, 0},
	{0x317c, 0x12, 0},
	{0x31ec, 0x37, 0},
	{0x3441, 0x0a, 0},
	{0x3442, 0x0a, 0},
	{0x300a, 0x3c, 0},
	{0x300b, 0x00, 0},
}

var settings12bit = []regval{
	{0x3005, 0x01, 0},
	{0x3046, 0x01, 0},
	{0x3129, 0x00, 0},
	{0x317c, 0x00, 0},
	{0x31ec, 0x0e, 0},
	{0x3441, 0x0c, 0},
	{0x3442, 0x0c, 0},
	{0x300a, 0xf0, 0},
	{0x300b, 0x00, 0},
}
