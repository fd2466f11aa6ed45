package state

import "github.com/nhle/kidpreneur-hub/internal/model"

// Draft is the in-progress create form plus image loading bookkeeping.
type Draft struct {
	Request model.CreateIdeaRequest

	// Generation is bumped every time the draft is cleared. Image results
	// from an older generation are discarded.
	Generation int

	// ImageSeq counts image selections within the current generation.
	ImageSeq int

	// ImageLoading is true while the latest selection is being read.
	ImageLoading bool

	// ImagePath is the file chosen by the latest selection.
	ImagePath string

	// ImageErr holds the read error of the latest selection, if any.
	ImageErr error
}

// ImageTicket identifies one image selection.
type ImageTicket struct {
	Generation int
	Seq        int
	Path       string
}

func (d Draft) reset() Draft {
	return Draft{Generation: d.Generation + 1}
}

// SetDraft replaces the draft's editable fields, keeping any attached
// image and the loading bookkeeping.
func SetDraft(s State, req model.CreateIdeaRequest) State {
	req.Image = s.Draft.Request.Image
	s.Draft.Request = req
	return s
}

// BeginImageLoad records a new image selection and returns the ticket the
// asynchronous read must present when it completes.
func BeginImageLoad(s State, path string) (State, ImageTicket) {
	s.Draft.ImageSeq++
	s.Draft.ImageLoading = true
	s.Draft.ImagePath = path
	s.Draft.ImageErr = nil

	return s, ImageTicket{
		Generation: s.Draft.Generation,
		Seq:        s.Draft.ImageSeq,
		Path:       path,
	}
}

// ApplyImage stores the result of an image read. Results for a cleared
// draft or for a selection that has since been superseded are dropped;
// the second return value reports whether the result was applied.
func ApplyImage(s State, t ImageTicket, dataURL string, err error) (State, bool) {
	if t.Generation != s.Draft.Generation || t.Seq != s.Draft.ImageSeq {
		return s, false
	}

	s.Draft.ImageLoading = false
	if err != nil {
		s.Draft.ImageErr = err
		return s, true
	}

	s.Draft.ImageErr = nil
	s.Draft.Request.Image = dataURL
	return s, true
}

// DetachImage removes the attached image and invalidates pending reads.
func DetachImage(s State) State {
	s.Draft.ImageSeq++
	s.Draft.ImageLoading = false
	s.Draft.ImagePath = ""
	s.Draft.ImageErr = nil
	s.Draft.Request.Image = ""
	return s
}
