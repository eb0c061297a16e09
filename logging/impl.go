package logging

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type impl struct {
	name  string
	level AtomicLevel

	cores []zapcore.Core
	sugar *zap.SugaredLogger
}

func newImpl(name string, level Level, cores ...zapcore.Core) *impl {
	imp := &impl{name: name, level: NewAtomicLevelAt(level), cores: cores}
	imp.sugar = imp.build()
	return imp
}

// build tees every core behind the logger's own level so SetLevel takes effect on all outputs.
func (imp *impl) build() *zap.SugaredLogger {
	gated := make([]zapcore.Core, 0, len(imp.cores))
	for _, core := range imp.cores {
		gated = append(gated, &levelCore{Core: core, level: imp.level})
	}
	return zap.New(zapcore.NewTee(gated...), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar().Named(imp.name)
}

func (imp *impl) Sublogger(subname string) Logger {
	newName := subname
	if imp.name != "" {
		newName = fmt.Sprintf("%s.%s", imp.name, subname)
	}
	return newImpl(newName, imp.level.Get(), imp.cores...)
}

func (imp *impl) SetLevel(level Level) {
	imp.level.Set(level)
}

func (imp *impl) GetLevel() Level {
	return imp.level.Get()
}

func (imp *impl) Desugar() *zap.Logger {
	return imp.sugar.Desugar()
}

func (imp *impl) Sync() error {
	var errs error
	for _, core := range imp.cores {
		errs = multierr.Append(errs, core.Sync())
	}
	return errs
}

func (imp *impl) Debug(args ...interface{}) { imp.sugar.Debug(args...) }

func (imp *impl) Debugf(template string, args ...interface{}) { imp.sugar.Debugf(template, args...) }

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.sugar.Debugw(msg, keysAndValues...)
}

func (imp *impl) Info(args ...interface{}) { imp.sugar.Info(args...) }

func (imp *impl) Infof(template string, args ...interface{}) { imp.sugar.Infof(template, args...) }

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	imp.sugar.Infow(msg, keysAndValues...)
}

func (imp *impl) Warn(args ...interface{}) { imp.sugar.Warn(args...) }

func (imp *impl) Warnf(template string, args ...interface{}) { imp.sugar.Warnf(template, args...) }

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.sugar.Warnw(msg, keysAndValues...)
}

func (imp *impl) Error(args ...interface{}) { imp.sugar.Error(args...) }

func (imp *impl) Errorf(template string, args ...interface{}) { imp.sugar.Errorf(template, args...) }

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.sugar.Errorw(msg, keysAndValues...)
}

// levelCore filters a wrapped core by a shared atomic level.
type levelCore struct {
	zapcore.Core
	level AtomicLevel
}

func (lc *levelCore) Enabled(lvl zapcore.Level) bool {
	return lc.level.Enabled(lvl) && lc.Core.Enabled(lvl)
}

func (lc *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: lc.Core.With(fields), level: lc.level}
}

func (lc *levelCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if lc.Enabled(entry.Level) {
		return checked.AddCore(entry, lc)
	}
	return checked
}
