package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"github.com/phpdave11/gofpdf"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/webp"

	"github.com/ytget/image-converter/internal/model"
)

// Codec errors, wrapped with the offending path
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecode            = errors.New("decode failed")
	ErrEncode            = errors.New("encode failed")
)

// PDF constants
const (
	PDFUnit      = "pt"
	PDFImageType = "PNG"
	pdfImageName = "page"
)

// WebPLosslessLevel trades encode speed for size, 0 to 9
const WebPLosslessLevel = 6

const (
	svgExtension   = "svg"
	tempFilePrefix = ".imgconv-"
)

// OutputFileMode is applied to written files; temp files start owner-only
const OutputFileMode os.FileMode = 0644

// Service converts images between formats
type Service struct {
	mu   sync.RWMutex
	opts Options
}

// NewService creates a codec with the given options
func NewService(opts Options) *Service {
	return &Service{opts: opts.Normalize()}
}

// Options returns the normalized options in use
func (s *Service) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// SetOptions replaces the options used by subsequent calls
func (s *Service) SetOptions(opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = opts.Normalize()
}

// Decode reads the image at path. SVG sources are rasterized.
func (s *Service) Decode(path string) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	opts := s.Options()
	if model.ExtensionOf(path) == svgExtension {
		img, err = decodeSVG(path, opts.SVGScale)
	} else {
		img, err = imaging.Open(path, imaging.AutoOrientation(opts.AutoOrient))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return img, nil
}

// Encode writes img to path in format. The file appears only once fully written.
func (s *Service) Encode(img image.Image, path string, format model.TargetFormat) error {
	opts := s.Options()
	write, err := writerFor(format, opts)
	if err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}

	img = fit(img, opts.MaxDimension)

	tmp, err := os.CreateTemp(filepath.Dir(path), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	tmpPath := tmp.Name()

	if err := write(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	if err := tmp.Chmod(OutputFileMode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}

	return nil
}

type writeFunc func(w io.Writer, img image.Image) error

func writerFor(format model.TargetFormat, opts Options) (writeFunc, error) {
	switch format {
	case model.FormatJPG:
		// JPEG has no alpha channel, transparency is flattened onto white
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, flatten(img), imaging.JPEG, imaging.JPEGQuality(opts.JPEGQuality))
		}, nil
	case model.FormatPNG:
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(opts.PNGCompression))
		}, nil
	case model.FormatGIF:
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, imaging.GIF)
		}, nil
	case model.FormatBMP:
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, imaging.BMP)
		}, nil
	case model.FormatTIFF:
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, imaging.TIFF)
		}, nil
	case model.FormatWebP:
		return func(w io.Writer, img image.Image) error {
			return encodeWebP(w, img, opts)
		}, nil
	case model.FormatPDF:
		return encodePDF, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func encodeWebP(w io.Writer, img image.Image, opts Options) error {
	var (
		options *encoder.Options
		err     error
	)
	if opts.WebPLossless {
		options, err = encoder.NewLosslessEncoderOptions(encoder.PresetDefault, WebPLosslessLevel)
	} else {
		options, err = encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(opts.WebPQuality))
	}
	if err != nil {
		return fmt.Errorf("webp options: %w", err)
	}
	return webp.Encode(w, img, options)
}

// encodePDF writes a single page sized to the image at 72 dpi
func encodePDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return err
	}

	bounds := img.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        PDFUnit,
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imageOptions := gofpdf.ImageOptions{ImageType: PDFImageType, ReadDpi: false}
	pdf.RegisterImageOptionsReader(pdfImageName, imageOptions, &buf)
	pdf.ImageOptions(pdfImageName, 0, 0, width, height, false, imageOptions, 0, "")

	return pdf.Output(w)
}

// decodeSVG rasterizes an SVG at its view box size times scale
func decodeSVG(path string, scale float64) (image.Image, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	icon, err := oksvg.ReadIconStream(in)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		w, h = DefaultSVGDimension, DefaultSVGDimension
	}
	w = max(1, int(float64(w)*scale))
	h = max(1, int(float64(h)*scale))
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// fit downscales img so neither side exceeds limit
func fit(img image.Image, limit int) image.Image {
	if limit <= 0 {
		return img
	}
	bounds := img.Bounds()
	if bounds.Dx() <= limit && bounds.Dy() <= limit {
		return img
	}
	return imaging.Fit(img, limit, limit, imaging.Lanczos)
}

// flatten composites img onto an opaque white background when it has alpha
func flatten(img image.Image) image.Image {
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return img
	}
	bounds := img.Bounds()
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}
