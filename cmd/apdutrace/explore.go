package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/gregLibert/arbint/pkg/emv"
	"github.com/gregLibert/arbint/pkg/iso7816"
)

// pseName is the DF name of the contact Payment System Environment.
const pseName = "1PAY.SYS.DDF01"

// explorer runs the PSE, directory and application steps against one card.
// Reports go to out, diagnostics to log.
type explorer struct {
	client *iso7816.Client
	cls    iso7816.Class
	cfg    Config
	log    zerolog.Logger
	out    io.Writer
}

func newExplorer(card iso7816.Transmitter, cfg Config, logger zerolog.Logger, out io.Writer) (*explorer, error) {
	cls, err := iso7816.NewInterindustryClass(false, iso7816.SMNone, 0)
	if err != nil {
		return nil, err
	}
	return &explorer{
		client: iso7816.NewClient(card),
		cls:    cls,
		cfg:    cfg,
		log:    logger,
		out:    out,
	}, nil
}

func (e *explorer) run() error {
	aids := e.cfg.AIDs
	if len(aids) == 0 {
		aids = e.discover()
	}
	if len(aids) == 0 {
		e.log.Warn().Msg("no application to select")
		return nil
	}

	e.selectApplications(aids)
	return nil
}

// discover lists the applications of the payment directory, highest
// priority first.
func (e *explorer) discover() [][]byte {
	e.section("SELECT PSE (%s)", pseName)
	sfi, err := e.selectPSE()
	if err != nil {
		e.log.Warn().Err(err).Msg("payment directory unavailable")
		return nil
	}

	e.section("READ DIRECTORY (SFI %s)", sfi)
	apps := e.readDirectory(sfi)
	emv.SortByPriority(apps)

	aids := make([][]byte, 0, len(apps))
	for _, app := range apps {
		aids = append(aids, app.AID)
	}
	return aids
}

func (e *explorer) selectPSE() (iso7816.SFI, error) {
	trace, err := e.client.Send(iso7816.SelectByAID(e.cls, []byte(pseName)))
	if err != nil {
		return iso7816.SFI{}, fmt.Errorf("select PSE: %w", err)
	}

	res, err := iso7816.NewSelectResult(trace)
	if err != nil {
		return iso7816.SFI{}, err
	}
	e.print(res.Describe())

	if !res.IsSuccess() {
		return iso7816.SFI{}, fmt.Errorf("select PSE: %s", res.Status().Verbose())
	}

	fci, err := emv.ParseFCI(res.Data())
	if err != nil {
		return iso7816.SFI{}, fmt.Errorf("select PSE: %w", err)
	}
	e.print(fci.Describe())

	sfi, ok := fci.DirectorySFI()
	if !ok {
		return iso7816.SFI{}, fmt.Errorf("select PSE: FCI names no directory SFI")
	}
	return sfi, nil
}

func (e *explorer) readDirectory(sfi iso7816.SFI) []emv.ApplicationTemplate {
	var apps []emv.ApplicationTemplate

	for rec := 1; rec <= e.cfg.MaxRecords; rec++ {
		trace, err := e.client.Send(iso7816.ReadRecord(e.cls, sfi, byte(rec)))
		if err != nil {
			e.log.Error().Err(err).Int("record", rec).Msg("read record")
			break
		}
		if trace.Status() == iso7816.SW_ERR_RECORD_NOT_FOUND {
			e.log.Debug().Int("records", rec-1).Msg("end of directory")
			break
		}

		res, err := iso7816.NewReadRecordResult(trace)
		if err != nil {
			e.log.Error().Err(err).Int("record", rec).Msg("read record")
			break
		}
		e.print(res.Describe())
		if !res.IsSuccess() {
			continue
		}

		record, err := emv.ParseDirectoryRecord(res.Data())
		if err != nil {
			e.log.Warn().Err(err).Int("record", rec).Msg("not a directory record")
			continue
		}
		e.print(record.Describe())

		for _, app := range record.Applications {
			if len(app.AID) == 0 {
				continue
			}
			e.log.Info().
				Hex("aid", app.AID).
				Str("label", string(app.ApplicationLabel)).
				Stringer("priority", app.ApplicationPriorityIndicator).
				Msg("candidate application")
			apps = append(apps, app)
		}
	}

	return apps
}

func (e *explorer) selectApplications(aids [][]byte) {
	for i, aid := range aids {
		e.section("SELECT APPLICATION %d/%d (%X)", i+1, len(aids), aid)

		trace, err := e.client.Send(iso7816.SelectByAID(e.cls, aid))
		if err != nil {
			e.log.Error().Err(err).Hex("aid", aid).Msg("select application")
			continue
		}

		res, err := iso7816.NewSelectResult(trace)
		if err != nil {
			e.log.Error().Err(err).Hex("aid", aid).Msg("select application")
			continue
		}
		e.print(res.Describe())

		if !res.IsSuccess() {
			e.log.Warn().Hex("aid", aid).Str("status", res.Status().Verbose()).Msg("selection failed")
			continue
		}

		fci, err := emv.ParseFCI(res.Data())
		if err != nil {
			e.log.Debug().Err(err).Hex("aid", aid).Msg("response is not an EMV FCI")
			continue
		}
		e.print(fci.Describe())
	}
}

func (e *explorer) section(format string, args ...any) {
	fmt.Fprintf(e.out, "\n=== %s ===\n", fmt.Sprintf(format, args...))
}

func (e *explorer) print(report string) {
	fmt.Fprintln(e.out, report)
}
