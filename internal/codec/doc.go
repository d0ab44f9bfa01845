package codec

// Package codec decodes source images (raster, WebP, SVG) and encodes them
// into the supported target formats, including single-page PDF.
