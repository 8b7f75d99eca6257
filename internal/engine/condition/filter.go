package condition

import "github.com/lacc97/libloot/internal/core/domain"

// FilterMetadata implements §4.3's "Filtering of a plugin record": produce
// a new record where every conditional sub-item — load-after file,
// requirement, incompatibility, message, tag, dirty info, clean info — is
// retained iff its attached condition evaluates true. Dirty/clean info
// additionally requires the plugin's CRC to match the record's declared
// CRC, and is skipped entirely for regex-named records, whose CRC is
// undefined. A condition evaluation failure aborts the whole pass: no
// partial filtering (§4.3 Failure).
func (e *Evaluator) FilterMetadata(m domain.PluginMetadata) (domain.PluginMetadata, error) {
	out := m
	out.LoadAfterFiles = nil
	out.Requirements = nil
	out.Incompatibilities = nil
	out.Messages = nil
	out.Tags = nil
	out.DirtyInfo = nil
	out.CleanInfo = nil

	var err error

	if out.LoadAfterFiles, err = filterFiles(e, m.LoadAfterFiles); err != nil {
		return domain.PluginMetadata{}, err
	}
	if out.Requirements, err = filterFiles(e, m.Requirements); err != nil {
		return domain.PluginMetadata{}, err
	}
	if out.Incompatibilities, err = filterFiles(e, m.Incompatibilities); err != nil {
		return domain.PluginMetadata{}, err
	}

	for _, msg := range m.Messages {
		ok, err := e.Evaluate(msg.Condition)
		if err != nil {
			return domain.PluginMetadata{}, err
		}
		if ok {
			out.Messages = append(out.Messages, msg)
		}
	}

	for _, tag := range m.Tags {
		ok, err := e.Evaluate(tag.Condition)
		if err != nil {
			return domain.PluginMetadata{}, err
		}
		if ok {
			out.Tags = append(out.Tags, tag)
		}
	}

	if !m.IsRegexPlugin {
		if out.DirtyInfo, err = filterCleaning(e, m.Name, m.DirtyInfo); err != nil {
			return domain.PluginMetadata{}, err
		}
		if out.CleanInfo, err = filterCleaning(e, m.Name, m.CleanInfo); err != nil {
			return domain.PluginMetadata{}, err
		}
	}

	return out, nil
}

func filterFiles(e *Evaluator, files []domain.File) ([]domain.File, error) {
	var out []domain.File
	for _, f := range files {
		ok, err := e.Evaluate(f.Condition)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func filterCleaning(e *Evaluator, pluginName string, infos []domain.CleaningData) ([]domain.CleaningData, error) {
	var out []domain.CleaningData
	for _, info := range infos {
		ok, err := e.Evaluate(info.Condition)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if !e.EvaluateCleaningData(info, pluginName) {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}
