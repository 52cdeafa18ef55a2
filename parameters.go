package hf

// Parameters groups the common generation parameters accepted by
// text-generation pipelines, such as temperature, top-p/top-k, and the
// number of new tokens. It is a typed convenience over the raw
// parameters map sent to the endpoint; arbitrary model kwargs can
// still be passed through CompletionRequest.Parameters directly.
//
// Parameters do not affect any requests automatically; callers are
// expected to apply them when constructing requests.
type Parameters struct {
	// Temperature controls randomness of the output.
	Temperature *float64
	// TopP controls nucleus sampling for the output.
	TopP *float64
	// TopK restricts sampling to the k most likely tokens.
	TopK *int
	// MaxNewTokens limits the number of tokens produced.
	MaxNewTokens *int
	// RepetitionPenalty penalizes repeated tokens. Values above 1
	// discourage repetition.
	RepetitionPenalty *float64
	// DoSample enables sampling instead of greedy decoding.
	DoSample *bool
}

// Map renders the set parameters into the wire-format parameters map
// expected by the inference API. Unset fields are omitted.
func (p *Parameters) Map() map[string]any {
	if p == nil {
		return nil
	}
	m := make(map[string]any)
	if p.Temperature != nil {
		m["temperature"] = *p.Temperature
	}
	if p.TopP != nil {
		m["top_p"] = *p.TopP
	}
	if p.TopK != nil {
		m["top_k"] = *p.TopK
	}
	if p.MaxNewTokens != nil {
		m["max_new_tokens"] = *p.MaxNewTokens
	}
	if p.RepetitionPenalty != nil {
		m["repetition_penalty"] = *p.RepetitionPenalty
	}
	if p.DoSample != nil {
		m["do_sample"] = *p.DoSample
	}
	return m
}

// ApplyTo merges the set parameters into the given CompletionRequest.
// Entries already present in req.Parameters are preserved.
func (p *Parameters) ApplyTo(req *CompletionRequest) {
	if p == nil {
		return
	}
	m := p.Map()
	if len(m) == 0 {
		return
	}
	if req.Parameters == nil {
		req.Parameters = make(map[string]any, len(m))
	}
	for k, v := range m {
		if _, ok := req.Parameters[k]; ok {
			continue
		}
		req.Parameters[k] = v
	}
}

// NewCompletionRequest constructs a CompletionRequest from the
// provided model, prompt, and optional Parameters. This avoids
// repeating parameter wiring at every call site.
func NewCompletionRequest(model CompletionModel, prompt string, params *Parameters) CompletionRequest {
	req := CompletionRequest{
		Model:  model,
		Prompt: prompt,
	}
	if params != nil {
		params.ApplyTo(&req)
	}
	return req
}
