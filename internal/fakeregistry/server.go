// Package fakeregistry provides an in-memory UDDI registry that speaks SOAP
// over HTTP, for client tests.
//
// It implements the tModel inquiry and publish calls, the auth token calls
// and add_publisherAssertions. Errors are answered the way a real registry
// does: a SOAP Fault with HTTP status 500 whose detail carries a
// dispositionReport.
package fakeregistry

import (
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/models"
	"github.com/uddiwire/uddi/pkg/soap"
	"github.com/uddiwire/uddi/pkg/types"
)

// Registry error numbers used in fault replies.
const (
	ErrnoUnsupported       = "10050"
	ErrnoAuthTokenRequired = "10120"
	ErrnoUnknownUser       = "10150"
	ErrnoInvalidKeyPassed  = "10210"
	ErrnoFatalError        = "10500"
)

var errCodes = map[string]string{
	ErrnoUnsupported:       "E_unsupported",
	ErrnoAuthTokenRequired: "E_authTokenRequired",
	ErrnoUnknownUser:       "E_unknownUser",
	ErrnoInvalidKeyPassed:  "E_invalidKeyPassed",
	ErrnoFatalError:        "E_fatalError",
}

// Server is an http.Handler serving both inquiry and publish calls.
type Server struct {
	// Operator is reported on every reply and stamped on saved tModels
	Operator string

	env    *codec.Env
	logger zerolog.Logger

	mu         sync.Mutex
	users      map[string]string
	tokens     map[string]string
	tModels    map[string]models.TModel
	assertions []models.PublisherAssertion
	calls      map[string]int
}

func NewServer(operator string) *Server {
	return &Server{
		Operator: operator,
		env:      codec.NewEnv(),
		logger:   zerolog.Nop(),
		users:    make(map[string]string),
		tokens:   make(map[string]string),
		tModels:  make(map[string]models.TModel),
		calls:    make(map[string]int),
	}
}

func (s *Server) SetLogger(l zerolog.Logger) *Server {
	s.logger = l
	return s
}

// AddUser registers publisher credentials accepted by get_authToken.
func (s *Server) AddUser(userID, cred string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = cred
}

// Seed stores t as if it had been saved. t must carry a key.
func (s *Server) Seed(t models.TModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tModels[t.Key.Value()] = t
}

// TModel returns the stored tModel for key.
func (s *Server) TModel(key string) (models.TModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tModels[key]
	return t, ok
}

// Assertions returns the publisher assertions added so far.
func (s *Server) Assertions() []models.PublisherAssertion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PublisherAssertion(nil), s.assertions...)
}

// Calls reports how many requests named tag were served.
func (s *Server) Calls(tag string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[tag]
}

// registryError is a fault to answer with.
type registryError struct {
	code  string
	errno string
	msg   string
}

func clientError(errno, msg string) *registryError {
	return &registryError{code: "Client", errno: errno, msg: msg}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r.Body); err != nil {
		s.writeFault(w, clientError(ErrnoFatalError, "malformed envelope"))
		return
	}
	payload, err := soap.Payload(doc)
	if err != nil {
		s.writeFault(w, clientError(ErrnoFatalError, err.Error()))
		return
	}

	s.mu.Lock()
	s.calls[payload.Tag]++
	s.mu.Unlock()
	s.logger.Debug().Str("request", payload.Tag).Msg("fake registry call")

	reply, rerr := s.dispatch(payload)
	if rerr != nil {
		s.writeFault(w, rerr)
		return
	}
	s.write(w, http.StatusOK, reply)
}

func (s *Server) dispatch(payload *etree.Element) (func(*etree.Element), *registryError) {
	switch payload.Tag {
	case models.FindTModelCodec.Tag():
		return handle(s, payload, models.FindTModelCodec, models.TModelListCodec, s.findTModel)
	case models.GetTModelDetailCodec.Tag():
		return handle(s, payload, models.GetTModelDetailCodec, models.TModelDetailCodec, s.getTModelDetail)
	case models.GetAuthTokenCodec.Tag():
		return handle(s, payload, models.GetAuthTokenCodec, models.AuthTokenCodec, s.getAuthToken)
	case models.DiscardAuthTokenCodec.Tag():
		return handle(s, payload, models.DiscardAuthTokenCodec, models.DispositionReportCodec, s.discardAuthToken)
	case models.SaveTModelCodec.Tag():
		return handle(s, payload, models.SaveTModelCodec, models.TModelDetailCodec, s.saveTModel)
	case models.DeleteTModelCodec.Tag():
		return handle(s, payload, models.DeleteTModelCodec, models.DispositionReportCodec, s.deleteTModel)
	case models.AddPublisherAssertionsCodec.Tag():
		return handle(s, payload, models.AddPublisherAssertionsCodec, models.DispositionReportCodec, s.addPublisherAssertions)
	default:
		return nil, clientError(ErrnoUnsupported, "unsupported call "+payload.Tag)
	}
}

// handle decodes the request, runs fn and returns an encoder for its reply.
func handle[Req, Resp any](
	s *Server,
	payload *etree.Element,
	req codec.Codec[Req],
	resp codec.Codec[Resp],
	fn func(*Req) (*Resp, *registryError),
) (func(*etree.Element), *registryError) {
	v, err := req.Decode(s.env, payload)
	if err != nil {
		return nil, clientError(ErrnoFatalError, err.Error())
	}
	out, rerr := fn(v)
	if rerr != nil {
		return nil, rerr
	}
	return func(body *etree.Element) { resp.Encode(s.env, out, body) }, nil
}

func (s *Server) findTModel(req *models.FindTModel) (*models.TModelList, *registryError) {
	prefix := ""
	if req.Name != nil {
		prefix = strings.ToLower(req.Name.Text.Value())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	infos := &models.TModelInfos{}
	for _, key := range s.sortedKeys() {
		t := s.tModels[key]
		if !strings.HasPrefix(strings.ToLower(t.NameText()), prefix) {
			continue
		}
		infos.Infos.Append(models.TModelInfo{Key: t.Key, Name: models.NewName(t.NameText())})
	}
	return &models.TModelList{
		Operator:    types.Some(s.Operator),
		TModelInfos: infos,
	}, nil
}

func (s *Server) getTModelDetail(req *models.GetTModelDetail) (*models.TModelDetail, *registryError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	detail := &models.TModelDetail{Operator: types.Some(s.Operator)}
	for _, key := range req.TModelKeys {
		t, ok := s.tModels[key]
		if !ok {
			return nil, clientError(ErrnoInvalidKeyPassed, "unknown tModelKey "+key)
		}
		detail.TModels.Append(t)
	}
	return detail, nil
}

func (s *Server) getAuthToken(req *models.GetAuthToken) (*models.AuthToken, *registryError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.users[req.UserID.Value()]
	if !ok || cred != req.Cred.Value() {
		return nil, clientError(ErrnoUnknownUser, "unknown user "+req.UserID.Value())
	}
	key, err := models.NewKey()
	if err != nil {
		return nil, &registryError{code: "Server", errno: ErrnoFatalError, msg: err.Error()}
	}
	token := "authToken:" + strings.TrimPrefix(key, "uuid:")
	s.tokens[token] = req.UserID.Value()
	return &models.AuthToken{Operator: types.Some(s.Operator), AuthInfo: types.Some(token)}, nil
}

func (s *Server) discardAuthToken(req *models.DiscardAuthToken) (*models.DispositionReport, *registryError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[req.AuthInfo.Value()]; !ok {
		return nil, clientError(ErrnoAuthTokenRequired, "invalid authInfo")
	}
	delete(s.tokens, req.AuthInfo.Value())
	return models.NewSuccessReport(s.Operator), nil
}

func (s *Server) saveTModel(req *models.SaveTModel) (*models.TModelDetail, *registryError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, rerr := s.authorize(req.AuthInfo)
	if rerr != nil {
		return nil, rerr
	}

	detail := &models.TModelDetail{Operator: types.Some(s.Operator)}
	for _, t := range req.TModels {
		if t.Key.Blank() {
			key, err := models.NewKey()
			if err != nil {
				return nil, &registryError{code: "Server", errno: ErrnoFatalError, msg: err.Error()}
			}
			t.Key = types.Some(key)
		} else if _, ok := s.tModels[t.Key.Value()]; !ok {
			return nil, clientError(ErrnoInvalidKeyPassed, "unknown tModelKey "+t.Key.Value())
		}
		t.Operator = types.Some(s.Operator)
		t.AuthorizedName = types.Some(user)
		s.tModels[t.Key.Value()] = t
		detail.TModels.Append(t)
	}
	return detail, nil
}

func (s *Server) deleteTModel(req *models.DeleteTModel) (*models.DispositionReport, *registryError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, rerr := s.authorize(req.AuthInfo); rerr != nil {
		return nil, rerr
	}
	for _, key := range req.TModelKeys {
		if _, ok := s.tModels[key]; !ok {
			return nil, clientError(ErrnoInvalidKeyPassed, "unknown tModelKey "+key)
		}
	}
	for _, key := range req.TModelKeys {
		delete(s.tModels, key)
	}
	return models.NewSuccessReport(s.Operator), nil
}

func (s *Server) addPublisherAssertions(req *models.AddPublisherAssertions) (*models.DispositionReport, *registryError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, rerr := s.authorize(req.AuthInfo); rerr != nil {
		return nil, rerr
	}
	s.assertions = append(s.assertions, req.PublisherAssertions...)
	return models.NewSuccessReport(s.Operator), nil
}

// authorize returns the user owning authInfo. Callers hold s.mu.
func (s *Server) authorize(authInfo types.String) (string, *registryError) {
	user, ok := s.tokens[authInfo.Value()]
	if !ok {
		return "", clientError(ErrnoAuthTokenRequired, "invalid authInfo")
	}
	return user, nil
}

func (s *Server) sortedKeys() []string {
	keys := make([]string, 0, len(s.tModels))
	for k := range s.tModels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Server) writeFault(w http.ResponseWriter, rerr *registryError) {
	s.logger.Debug().Str("errno", rerr.errno).Str("msg", rerr.msg).Msg("fake registry fault")

	report := &models.DispositionReport{
		Operator: types.Some(s.Operator),
		Results: types.List[models.Result]{{
			Errno:   types.Some(rerr.errno),
			ErrInfo: &models.ErrInfo{ErrCode: types.Some(errCodes[rerr.errno]), Text: types.Some(rerr.msg)},
		}},
	}
	s.write(w, http.StatusInternalServerError, func(body *etree.Element) {
		f := body.CreateElement(constants.SOAPPrefix + ":Fault")
		f.CreateElement("faultcode").SetText(constants.SOAPPrefix + ":" + rerr.code)
		f.CreateElement("faultstring").SetText(rerr.code + " Error")
		models.DispositionReportCodec.Encode(s.env, report, f.CreateElement("detail"))
	})
}

func (s *Server) write(w http.ResponseWriter, status int, encode func(*etree.Element)) {
	doc, body := soap.NewEnvelope()
	encode(body)

	w.Header().Set("Content-Type", constants.ContentTypeXML)
	w.WriteHeader(status)
	if _, err := doc.WriteTo(w); err != nil {
		s.logger.Warn().Err(err).Msg("failed to write reply")
	}
}
