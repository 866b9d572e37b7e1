package derive

func dumpPath(path Path) {
	tracer().Debugf("--- Path ------------------------------------------")
	for n, e := range path {
		tracer().Debugf("[%2d] %s", n, e)
	}
	tracer().Debugf("---------------------------------------------------")
}
